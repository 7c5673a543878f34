package discord

import "github.com/bwmarrin/discordgo"

// Session is the part of *discordgo.Session the handlers use, so they can be
// exercised without a gateway connection.
type Session interface {
	ChannelMessageSendComplex(
		channelID string,
		data *discordgo.MessageSend,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)

	InteractionRespond(
		interaction *discordgo.Interaction,
		resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption,
	) error
}

var _ Session = (*discordgo.Session)(nil)
