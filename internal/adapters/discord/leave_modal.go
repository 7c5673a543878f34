package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"gaasbot/internal/ports/output"
	pkgdiscord "gaasbot/pkg/discord"
)

// HandleLeaveModalSubmit records the submitted reason and confirms it to the member.
func (h *Handler) HandleLeaveModalSubmit(ctx context.Context, s Session, i *discordgo.InteractionCreate, id CustomID) {
	reason := pkgdiscord.TextInputValue(i.ModalSubmitData(), leaveReasonInputID)

	record, err := h.leaveUseCase.RecordLeave(ctx, id.EventID, memberFromInteraction(i), reason)
	if err != nil {
		h.reject(ctx, s, i, err)
		return
	}
	h.logger.InfoContext(ctx, "leave recorded", "event", record.EventID, "date", record.Date, "member", record.Nickname)

	msg := h.translator.T(h.interactionLocale(i), output.MsgLeaveRecorded, map[string]any{
		"Nickname": record.Nickname,
	})
	if err := respondEphemeral(s, i.Interaction, msg); err != nil {
		h.logger.ErrorContext(ctx, "leave confirmation failed", "event", id.EventID, tint.Err(err))
	}
}
