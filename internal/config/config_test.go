package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaasbot/internal/infrastructure/filestore"
	"gaasbot/internal/infrastructure/schedule"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN", "test-token")
	t.Setenv("GUILD_ID", "937992003415838761")
	t.Setenv("PARTY_CHANNEL_ID", "1012345678901234567")
	t.Setenv("GAAS_CONVERSATION_CHANNEL_ID", "1012345678901234568")
	t.Setenv("GAAS_MEMBER_ROLE_ID", "1012345678901234569")
}

func noEnvFile(t *testing.T) []string {
	return []string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, "937992003415838761", cfg.GuildID)
	assert.Equal(t, DefaultEventMarker, cfg.EventMarker)
	assert.Equal(t, filestore.DefaultDir, cfg.LeaveDataDir)
	assert.True(t, cfg.RecheckOnSubmit)
	assert.Equal(t, DefaultLocale, cfg.DefaultLocale)
	assert.Equal(t, 24*time.Hour, cfg.SessionRetention)
	assert.Equal(t, schedule.DefaultSpec, cfg.PruneSchedule)
	assert.Equal(t, "", cfg.HealthAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LEAVE_RECHECK_ON_SUBMIT", "false")
	t.Setenv("SESSION_RETENTION", "2h")
	t.Setenv("LEAVE_DATA_DIR", "/srv/leave")
	t.Setenv("EVENT_TIMEZONE", "Asia/Taipei")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(append(noEnvFile(t), "--log-level", "debug"))
	require.NoError(t, err)

	assert.False(t, cfg.RecheckOnSubmit)
	assert.Equal(t, 2*time.Hour, cfg.SessionRetention)
	assert.Equal(t, "/srv/leave", cfg.LeaveDataDir)
	assert.Equal(t, "Asia/Taipei", cfg.Timezone)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel, "flag wins over environment")
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.env")
	content := "TOKEN=from-file\nGUILD_ID=937992003415838761\nPARTY_CHANNEL_ID=1012345678901234567\n" +
		"GAAS_CONVERSATION_CHANNEL_ID=1012345678901234568\nGAAS_MEMBER_ROLE_ID=1012345678901234569\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	for _, key := range []string{"TOKEN", "GUILD_ID", "PARTY_CHANNEL_ID", "GAAS_CONVERSATION_CHANNEL_ID", "GAAS_MEMBER_ROLE_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load([]string{"--env-file", path})
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "1012345678901234569", cfg.MemberRoleID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing token", "TOKEN", "", "TOKEN is required"},
		{"missing guild", "GUILD_ID", "", "GUILD_ID is required"},
		{"non numeric channel", "PARTY_CHANNEL_ID", "party", "PARTY_CHANNEL_ID must be a Discord snowflake"},
		{"zero role", "GAAS_MEMBER_ROLE_ID", "0", "GAAS_MEMBER_ROLE_ID must be a Discord snowflake"},
		{"blank marker", "GAAS_EVENT_MARKER", " ", "GAAS_EVENT_MARKER"},
		{"bad level", "LOG_LEVEL", "loud", "LOG_LEVEL"},
		{"negative retention", "SESSION_RETENTION", "-1h", "SESSION_RETENTION"},
		{"unparsable retention", "SESSION_RETENTION", "1 day", "config: SESSION_RETENTION"},
		{"unparsable recheck", "LEAVE_RECHECK_ON_SUBMIT", "yes", "config: LEAVE_RECHECK_ON_SUBMIT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(noEnvFile(t))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	setRequired(t)
	_, err := Load([]string{"--nope"})
	assert.Error(t, err)
}
