package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"

	"gaasbot/internal/domain"
	"gaasbot/internal/domain/entities"
	pkgdiscord "gaasbot/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

func memberFromInteraction(i *discordgo.InteractionCreate) entities.Member {
	if i.Member == nil {
		m := entities.Member{}
		if i.User != nil {
			m.UserID = i.User.ID
			m.DisplayName = i.User.Username
		}
		return m
	}
	m := entities.Member{
		DisplayName: resolveDisplayName(i.Member),
		RoleIDs:     i.Member.Roles,
	}
	if i.Member.User != nil {
		m.UserID = i.Member.User.ID
	}
	return m
}

func (h *Handler) interactionLocale(i *discordgo.InteractionCreate) string {
	if i.Locale != "" {
		return string(i.Locale)
	}
	return h.config.DefaultLocale
}

func respondEphemeral(s Session, i *discordgo.Interaction, content string) error {
	return s.InteractionRespond(i, pkgdiscord.EphemeralMessage(content))
}

// reject tells the user why their interaction was refused. Domain errors are
// expected outcomes; anything else is logged as a failure.
func (h *Handler) reject(ctx context.Context, s Session, i *discordgo.InteractionCreate, err error) {
	if domain.Code(err) == "" {
		h.logger.ErrorContext(ctx, "leave interaction failed", "interaction", i.ID, tint.Err(err))
	} else {
		h.logger.DebugContext(ctx, "leave interaction rejected", "interaction", i.ID, "reason", domain.Code(err))
	}
	msg := h.translator.T(h.interactionLocale(i), pkgdiscord.DomainErrorKey(err), nil)
	if err := respondEphemeral(s, i.Interaction, msg); err != nil {
		h.logger.ErrorContext(ctx, "ephemeral reply failed", "interaction", i.ID, tint.Err(err))
	}
}
