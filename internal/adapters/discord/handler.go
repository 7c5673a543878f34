package discord

import (
	"log/slog"

	"gaasbot/internal/ports/input"
	"gaasbot/internal/ports/output"
)

// HandlerConfig holds the Discord ids the leave handlers talk to.
type HandlerConfig struct {
	ConversationChannelID string
	MemberRoleID          string
	DefaultLocale         string
}

// Handler handles Discord events using the leave use case.
type Handler struct {
	leaveUseCase input.LeaveUseCase
	translator   output.Translator
	config       HandlerConfig
	logger       *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	leaveUseCase input.LeaveUseCase,
	translator output.Translator,
	config HandlerConfig,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		leaveUseCase: leaveUseCase,
		translator:   translator,
		config:       config,
		logger:       logger,
	}
}
