package discord

import (
	"channel-request/domain"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	SetupCommand       = "!setup-button"
	RequestButtonID    = "open-request-modal"
	RequestModalID     = "channel-request-modal"
	ChannelNameFieldID = "channel_name"
	MembersFieldID     = "channel_members"
)

// RequestButtonMessage is posted by an administrator in the channel where members ask
// for private channels.
func RequestButtonMessage() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: "To request a private channel, press the button below.",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Request",
						Style:    discordgo.PrimaryButton,
						CustomID: RequestButtonID,
					},
				},
			},
		},
	}
}

// RequestModal asks for the channel name and the members. Both fields are optional.
func RequestModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: RequestModalID,
			Title:    "Private channel request",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  ChannelNameFieldID,
							Label:     "Channel name",
							Style:     discordgo.TextInputShort,
							Required:  false,
							MaxLength: domain.MaxChannelNameLength,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    MembersFieldID,
							Label:       "Members (@names, ids or mentions)",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "@alice, 123456789012345678, Bob Smith",
							Required:    false,
							MaxLength:   domain.MaxMembersLength,
						},
					},
				},
			},
		},
	}
}

// ModalFields extracts the text inputs of a submitted modal by custom id.
func ModalFields(data discordgo.ModalSubmitInteractionData) map[string]string {
	fields := make(map[string]string)
	for _, row := range data.Components {
		for _, component := range rowComponents(row) {
			switch input := component.(type) {
			case *discordgo.TextInput:
				fields[input.CustomID] = strings.TrimSpace(input.Value)
			case discordgo.TextInput:
				fields[input.CustomID] = strings.TrimSpace(input.Value)
			}
		}
	}
	return fields
}

func rowComponents(component discordgo.MessageComponent) []discordgo.MessageComponent {
	switch row := component.(type) {
	case *discordgo.ActionsRow:
		return row.Components
	case discordgo.ActionsRow:
		return row.Components
	default:
		return nil
	}
}
