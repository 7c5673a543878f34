package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"gaasbot/internal/config"
	"gaasbot/internal/ports/input"
	"gaasbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	handler *Handler
	router  *Router
	logger  *slog.Logger
}

// NewBot creates a Bot and wires the leave use case into the gateway handlers.
func NewBot(
	cfg *config.Config,
	leaveUseCase input.LeaveUseCase,
	translator output.Translator,
	logger *slog.Logger,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildScheduledEvents
	s.LogLevel = discordgoLogLevel(cfg.LogLevel)
	discordgo.Logger = discordgoLoggerFunc(logger.Handler())

	handler := NewHandler(leaveUseCase, translator, HandlerConfig{
		ConversationChannelID: cfg.ConversationChannelID,
		MemberRoleID:          cfg.MemberRoleID,
		DefaultLocale:         cfg.DefaultLocale,
	}, logger.With(LoggerNameKey, "leave"))

	return &Bot{
		session: s,
		handler: handler,
		router:  NewRouter(handler),
		logger:  logger.With(LoggerNameKey, "discord"),
	}, nil
}

func (b *Bot) setupHandlers(ctx context.Context) {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.logger.InfoContext(ctx, "connected to gateway", "user", r.User.Username, "guilds", len(r.Guilds))
	})
	b.session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildScheduledEventCreate) {
		b.handler.HandleScheduledEventCreate(ctx, s, e)
	})
	b.session.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildScheduledEventUpdate) {
		b.handler.HandleScheduledEventUpdate(ctx, e)
	})
	b.session.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildScheduledEventDelete) {
		b.handler.HandleScheduledEventDelete(ctx, e)
	})
	b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.router.Dispatch(ctx, s, i)
	})
}

// Start connects to the gateway and runs until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	b.setupHandlers(ctx)
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	b.logger.InfoContext(ctx, "bot online, press CTRL+C to quit")
	<-ctx.Done()
	b.logger.InfoContext(ctx, "shutting down")
	return nil
}
