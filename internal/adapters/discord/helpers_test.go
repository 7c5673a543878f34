package discord

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"gaasbot/internal/application"
	"gaasbot/internal/infrastructure/filestore"
	"gaasbot/internal/infrastructure/i18n"
	"gaasbot/internal/infrastructure/memory"
)

const (
	testGuildID        = "937992003415838761"
	testPartyChannelID = "1012345678901234567"
	testConversationID = "1012345678901234568"
	testRoleID         = "1012345678901234569"
	testEventID        = "1200000000000000001"
)

var cst = time.FixedZone("CST", 8*3600)

type sentMessage struct {
	channelID string
	data      *discordgo.MessageSend
}

type fakeSession struct {
	mu         sync.Mutex
	sent       []sentMessage
	responses  []*discordgo.InteractionResponse
	sendErr    error
	respondErr error
}

func (f *fakeSession) ChannelMessageSendComplex(
	channelID string,
	data *discordgo.MessageSend,
	_ ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, data: data})
	return &discordgo.Message{ChannelID: channelID, Content: data.Content}, nil
}

func (f *fakeSession) InteractionRespond(
	_ *discordgo.Interaction,
	resp *discordgo.InteractionResponse,
	_ ...discordgo.RequestOption,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return f.respondErr
}

type mutableClock struct{ now time.Time }

func (c *mutableClock) Now() time.Time { return c.now }

type testBot struct {
	handler  *Handler
	router   *Router
	session  *fakeSession
	store    *filestore.LeaveStore
	sessions *memory.SessionRepository
	clock    *mutableClock
}

func newTestBot(t *testing.T, recheck bool) *testBot {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := memory.NewSessionRepository()
	store := filestore.NewLeaveStore(t.TempDir())
	clk := &mutableClock{now: time.Date(2024, 2, 20, 10, 0, 0, 0, cst)}
	svc := application.NewLeaveService(sessions, store, clk, application.LeavePolicy{
		GuildID:          testGuildID,
		PartyChannelID:   testPartyChannelID,
		MemberRoleID:     testRoleID,
		EventMarker:      "遊戲微服務",
		Location:         cst,
		RecheckOnSubmit:  recheck,
		SessionRetention: 24 * time.Hour,
	})
	h := NewHandler(svc, i18n.NewTranslator("zh-TW", logger), HandlerConfig{
		ConversationChannelID: testConversationID,
		MemberRoleID:          testRoleID,
		DefaultLocale:         "zh-TW",
	}, logger)
	return &testBot{
		handler:  h,
		router:   NewRouter(h),
		session:  &fakeSession{},
		store:    store,
		sessions: sessions,
		clock:    clk,
	}
}

func gaasScheduledEvent() *discordgo.GuildScheduledEvent {
	return &discordgo.GuildScheduledEvent{
		ID:                 testEventID,
		GuildID:            testGuildID,
		ChannelID:          testPartyChannelID,
		Name:               "遊戲微服務第10場",
		ScheduledStartTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:             discordgo.GuildScheduledEventStatusScheduled,
	}
}

func guildMember(nick string, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		Nick:  nick,
		Roles: roles,
		User:  &discordgo.User{ID: "1300000000000000001", Username: "aming", GlobalName: "A-Ming"},
	}
}

func buttonClick(customID string, member *discordgo.Member) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "1400000000000000001",
		Type:   discordgo.InteractionMessageComponent,
		Locale: discordgo.ChineseTW,
		Member: member,
		Data: discordgo.MessageComponentInteractionData{
			CustomID:      customID,
			ComponentType: discordgo.ButtonComponent,
		},
	}}
}

func modalSubmit(customID string, member *discordgo.Member, reason string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "1400000000000000002",
		Type:   discordgo.InteractionModalSubmit,
		Locale: discordgo.ChineseTW,
		Member: member,
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: customID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: leaveReasonInputID, Value: reason},
				}},
			},
		},
	}}
}

var errDiscordDown = errors.New("discord: 503 Service Unavailable")
