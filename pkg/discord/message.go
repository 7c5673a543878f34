package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func RoleMention(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}

// RoleAnnouncement builds a message that may only ping roleID, with one
// primary button underneath.
func RoleAnnouncement(roleID, content, buttonLabel, buttonID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Roles: []string{roleID},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: buttonLabel, Style: discordgo.PrimaryButton, CustomID: buttonID},
			}},
		},
	}
}

// EphemeralMessage is a reply only the interacting user can see.
func EphemeralMessage(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
