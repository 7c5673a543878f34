package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"gaasbot/internal/domain"
	"gaasbot/internal/domain/entities"
	"gaasbot/internal/ports/output"
	pkgdiscord "gaasbot/pkg/discord"
)

func scheduledEventFromDiscord(e *discordgo.GuildScheduledEvent) entities.ScheduledEvent {
	return entities.ScheduledEvent{
		ID:        e.ID,
		GuildID:   e.GuildID,
		ChannelID: e.ChannelID,
		Name:      e.Name,
		StartsAt:  e.ScheduledStartTime,
	}
}

// HandleScheduledEventCreate posts the leave reminder for new GaaS events.
func (h *Handler) HandleScheduledEventCreate(ctx context.Context, s Session, e *discordgo.GuildScheduledEventCreate) {
	if e == nil || e.GuildScheduledEvent == nil {
		return
	}
	if err := h.announce(ctx, s, e.GuildScheduledEvent); err != nil {
		h.logger.ErrorContext(ctx, "leave announcement failed", "event", e.ID, tint.Err(err))
	}
}

func (h *Handler) announce(ctx context.Context, s Session, e *discordgo.GuildScheduledEvent) error {
	session, err := h.leaveUseCase.AnnounceEvent(ctx, scheduledEventFromDiscord(e))
	if errors.Is(err, domain.ErrEventNotTracked) {
		h.logger.DebugContext(ctx, "scheduled event ignored", "event", e.ID, "name", e.Name, "channel", e.ChannelID)
		return nil
	}
	if err != nil {
		return err
	}

	locale := h.config.DefaultLocale
	content := h.translator.T(locale, output.MsgAnnounceBody, map[string]any{
		"RoleMention": pkgdiscord.RoleMention(h.config.MemberRoleID),
		"Date":        session.Date(),
	})
	msg := pkgdiscord.RoleAnnouncement(
		h.config.MemberRoleID,
		content,
		h.translator.T(locale, output.MsgAnnounceButton, nil),
		NewCustomID(KindLeaveButton, session.EventID).String(),
	)
	if _, err := s.ChannelMessageSendComplex(h.config.ConversationChannelID, msg); err != nil {
		return fmt.Errorf("send leave announcement to %s: %w", h.config.ConversationChannelID, err)
	}
	h.logger.InfoContext(ctx, "leave announcement posted", "event", session.EventID, "date", session.Date())
	return nil
}

// HandleScheduledEventUpdate follows start time changes of announced events
// and closes the session when the event gets cancelled.
func (h *Handler) HandleScheduledEventUpdate(ctx context.Context, e *discordgo.GuildScheduledEventUpdate) {
	if e == nil || e.GuildScheduledEvent == nil {
		return
	}
	if e.Status == discordgo.GuildScheduledEventStatusCanceled {
		h.cancel(ctx, e.ID)
		return
	}
	session, err := h.leaveUseCase.RescheduleEvent(ctx, scheduledEventFromDiscord(e.GuildScheduledEvent))
	switch {
	case errors.Is(err, domain.ErrEventNotTracked):
		h.logger.DebugContext(ctx, "scheduled event update ignored", "event", e.ID, "name", e.Name, "channel", e.ChannelID)
	case err != nil:
		h.logger.ErrorContext(ctx, "leave session reschedule failed", "event", e.ID, tint.Err(err))
	default:
		h.logger.InfoContext(ctx, "leave session rescheduled", "event", session.EventID, "date", session.Date())
	}
}

func (h *Handler) HandleScheduledEventDelete(ctx context.Context, e *discordgo.GuildScheduledEventDelete) {
	if e == nil || e.GuildScheduledEvent == nil {
		return
	}
	h.cancel(ctx, e.ID)
}

func (h *Handler) cancel(ctx context.Context, eventID string) {
	if err := h.leaveUseCase.CancelEvent(ctx, eventID); err != nil {
		h.logger.ErrorContext(ctx, "leave session cancel failed", "event", eventID, tint.Err(err))
	}
}
