package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gaasbot/internal/infrastructure/filestore"
	"gaasbot/internal/infrastructure/schedule"
)

const (
	DefaultEventMarker      = "遊戲微服務"
	DefaultLocale           = "zh-TW"
	DefaultSessionRetention = 24 * time.Hour
	DefaultEnvFile          = ".env"
)

type Config struct {
	Token                 string
	GuildID               string
	PartyChannelID        string
	ConversationChannelID string
	MemberRoleID          string
	EventMarker           string
	LeaveDataDir          string
	RecheckOnSubmit       bool
	Timezone              string
	DefaultLocale         string
	SessionRetention      time.Duration
	PruneSchedule         string
	HealthAddr            string
	LogLevel              slog.Level
}

// Load reads the configuration from command-line flags, an optional .env file
// and the environment, then validates it.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("gaasbot", pflag.ContinueOnError)
	envFile := flags.String("env-file", DefaultEnvFile, "dotenv file loaded before reading the environment")
	flags.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", *envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("GAAS_EVENT_MARKER", DefaultEventMarker)
	v.SetDefault("LEAVE_DATA_DIR", filestore.DefaultDir)
	v.SetDefault("LEAVE_RECHECK_ON_SUBMIT", true)
	v.SetDefault("DEFAULT_LOCALE", DefaultLocale)
	v.SetDefault("SESSION_RETENTION", DefaultSessionRetention)
	v.SetDefault("SESSION_PRUNE_SCHEDULE", schedule.DefaultSpec)
	v.SetDefault("LOG_LEVEL", slog.LevelInfo.String())
	if err := v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level")); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Token:                 v.GetString("TOKEN"),
		GuildID:               v.GetString("GUILD_ID"),
		PartyChannelID:        v.GetString("PARTY_CHANNEL_ID"),
		ConversationChannelID: v.GetString("GAAS_CONVERSATION_CHANNEL_ID"),
		MemberRoleID:          v.GetString("GAAS_MEMBER_ROLE_ID"),
		EventMarker:           v.GetString("GAAS_EVENT_MARKER"),
		LeaveDataDir:          v.GetString("LEAVE_DATA_DIR"),
		Timezone:              v.GetString("EVENT_TIMEZONE"),
		DefaultLocale:         v.GetString("DEFAULT_LOCALE"),
		PruneSchedule:         v.GetString("SESSION_PRUNE_SCHEDULE"),
		HealthAddr:            v.GetString("HEALTH_ADDR"),
	}
	var err error
	if cfg.RecheckOnSubmit, err = cast.ToBoolE(v.Get("LEAVE_RECHECK_ON_SUBMIT")); err != nil {
		return nil, fmt.Errorf("config: LEAVE_RECHECK_ON_SUBMIT: %w", err)
	}
	if cfg.SessionRetention, err = cast.ToDurationE(v.Get("SESSION_RETENTION")); err != nil {
		return nil, fmt.Errorf("config: SESSION_RETENTION: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules every loaded configuration must satisfy.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	ids := []struct {
		key   string
		value string
	}{
		{"GUILD_ID", c.GuildID},
		{"PARTY_CHANNEL_ID", c.PartyChannelID},
		{"GAAS_CONVERSATION_CHANNEL_ID", c.ConversationChannelID},
		{"GAAS_MEMBER_ROLE_ID", c.MemberRoleID},
	}
	for _, id := range ids {
		if strings.TrimSpace(id.value) == "" {
			return fmt.Errorf("config: %s is required", id.key)
		}
		parsed, err := snowflake.Parse(id.value)
		if err != nil || parsed == 0 {
			return fmt.Errorf("config: %s must be a Discord snowflake id, got %q", id.key, id.value)
		}
	}

	if strings.TrimSpace(c.EventMarker) == "" {
		return fmt.Errorf("config: GAAS_EVENT_MARKER must not be empty")
	}
	if strings.TrimSpace(c.LeaveDataDir) == "" {
		c.LeaveDataDir = filestore.DefaultDir
	}
	if c.SessionRetention < 0 {
		return fmt.Errorf("config: SESSION_RETENTION must not be negative")
	}

	return nil
}
