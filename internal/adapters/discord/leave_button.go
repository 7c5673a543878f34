package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"gaasbot/internal/domain/entities"
	"gaasbot/internal/ports/output"
	pkgdiscord "gaasbot/pkg/discord"
)

const leaveReasonInputID = "leave-reason"

// HandleLeaveButton opens the leave form for members while the window is open.
func (h *Handler) HandleLeaveButton(ctx context.Context, s Session, i *discordgo.InteractionCreate, id CustomID) {
	if _, err := h.leaveUseCase.OpenRequest(ctx, id.EventID, memberFromInteraction(i)); err != nil {
		h.reject(ctx, s, i, err)
		return
	}

	locale := h.interactionLocale(i)
	modal := pkgdiscord.ShortTextModal(
		NewCustomID(KindLeaveModal, id.EventID).String(),
		h.translator.T(locale, output.MsgLeaveModalTitle, nil),
		discordgo.TextInput{
			CustomID:    leaveReasonInputID,
			Label:       h.translator.T(locale, output.MsgLeaveReasonLabel, nil),
			Placeholder: h.translator.T(locale, output.MsgLeaveReasonPlaceholder, nil),
			MinLength:   entities.MinReasonLength,
			MaxLength:   entities.MaxReasonLength,
		},
	)
	if err := s.InteractionRespond(i.Interaction, modal); err != nil {
		h.logger.ErrorContext(ctx, "open leave modal failed", "event", id.EventID, tint.Err(err))
	}
}
