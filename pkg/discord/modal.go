package discord

import "github.com/bwmarrin/discordgo"

// TextInputValue returns the value of the text input with the given custom id,
// or "" when the modal has no such field.
func TextInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// ShortTextModal builds a modal with a single required short text input.
func ShortTextModal(customID, title string, input discordgo.TextInput) *discordgo.InteractionResponse {
	input.Style = discordgo.TextInputShort
	input.Required = true
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}},
			},
		},
	}
}
