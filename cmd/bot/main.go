package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"gaasbot/internal/adapters/discord"
	"gaasbot/internal/application"
	"gaasbot/internal/clock"
	"gaasbot/internal/config"
	"gaasbot/internal/infrastructure/filestore"
	"gaasbot/internal/infrastructure/health"
	"gaasbot/internal/infrastructure/i18n"
	"gaasbot/internal/infrastructure/memory"
	"gaasbot/internal/infrastructure/schedule"
	"gaasbot/pkg/tz"
)

func main() {
	if err := run(); err != nil {
		slog.Error("gaasbot stopped", tint.Err(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load event timezone: %w", err)
	}

	sessions := memory.NewSessionRepository()
	leaveService := application.NewLeaveService(
		sessions,
		filestore.NewLeaveStore(cfg.LeaveDataDir),
		clock.NewSystem(),
		application.LeavePolicy{
			GuildID:          cfg.GuildID,
			PartyChannelID:   cfg.PartyChannelID,
			MemberRoleID:     cfg.MemberRoleID,
			EventMarker:      cfg.EventMarker,
			Location:         loc,
			RecheckOnSubmit:  cfg.RecheckOnSubmit,
			SessionRetention: cfg.SessionRetention,
		},
	)

	pruner, err := schedule.NewSessionPruner(leaveService, cfg.PruneSchedule, logger.With(discord.LoggerNameKey, "pruner"))
	if err != nil {
		return err
	}
	go pruner.Run(ctx)

	if cfg.HealthAddr != "" {
		go func() {
			if err := health.Serve(ctx, cfg.HealthAddr, sessions, logger.With(discord.LoggerNameKey, "health")); err != nil {
				logger.Error("health endpoint stopped", tint.Err(err))
			}
		}()
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger.With(discord.LoggerNameKey, "i18n"))
	bot, err := discord.NewBot(cfg, leaveService, translator, logger)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
