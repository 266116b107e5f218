package discord

import (
	"channel-request/domain"
	"channel-request/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeAPI struct {
	permissions int64
	sent        []*discordgo.MessageSend
	responses   []*discordgo.InteractionResponse
	edits       []*discordgo.WebhookEdit
}

func (f *fakeAPI) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, data)
	return &discordgo.Message{}, nil
}

func (f *fakeAPI) UserChannelPermissions(_, _ string, _ ...discordgo.RequestOption) (int64, error) {
	return f.permissions, nil
}

func (f *fakeAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeAPI) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func newTestBot(t *testing.T, api *fakeAPI) (*Bot, *mocks.MockIChannelRequestService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChannelRequestService(ctrl)
	bot := NewBot(slog.Default(), service, time.Second)
	bot.api = api
	return bot, service
}

func setupMessage(author *discordgo.User, guild string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: textID,
		GuildID:   guild,
		Author:    author,
		Content:   SetupCommand,
	}}
}

func TestBot_HandleMessage(t *testing.T) {
	admin := &discordgo.User{ID: "300000000000000001", Username: "alice"}

	t.Run("should post the request button for an administrator", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{permissions: discordgo.PermissionAdministrator}
		bot, _ := newTestBot(t, api)

		bot.handleMessage(setupMessage(admin, guildID))

		req.Len(api.sent, 1)
		req.Equal(RequestButtonMessage(), api.sent[0])
	})

	t.Run("should ignore members without the administrator permission", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{permissions: discordgo.PermissionSendMessages}
		bot, _ := newTestBot(t, api)

		bot.handleMessage(setupMessage(admin, guildID))

		req.Empty(api.sent)
	})

	t.Run("should ignore bots and direct messages", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{permissions: discordgo.PermissionAdministrator}
		bot, _ := newTestBot(t, api)

		bot.handleMessage(setupMessage(&discordgo.User{ID: "300000000000000009", Bot: true}, guildID))
		bot.handleMessage(setupMessage(admin, ""))

		req.Empty(api.sent)
	})

	t.Run("should ignore other messages", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{permissions: discordgo.PermissionAdministrator}
		bot, _ := newTestBot(t, api)
		message := setupMessage(admin, guildID)
		message.Content = "hello"

		bot.handleMessage(message)

		req.Empty(api.sent)
	})
}

func TestBot_HandleInteraction(t *testing.T) {
	member := &discordgo.Member{User: &discordgo.User{ID: "300000000000000001", Username: "alice"}}

	t.Run("should open the request modal when the button is pressed", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{}
		bot, service := newTestBot(t, api)
		service.EXPECT().OpenRequest(guildID, "300000000000000001").Return(domain.NewInteraction("i"))

		bot.handleInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			ID:      "500000000000000001",
			Type:    discordgo.InteractionMessageComponent,
			GuildID: guildID,
			Member:  member,
			Data:    discordgo.MessageComponentInteractionData{CustomID: RequestButtonID},
		}})

		req.Len(api.responses, 1)
		req.Equal(discordgo.InteractionResponseModal, api.responses[0].Type)
		req.Equal(RequestModalID, api.responses[0].Data.CustomID)
	})

	t.Run("should defer then edit the reply with the outcome", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{}
		bot, service := newTestBot(t, api)
		outcome := domain.Outcome{
			State:   domain.StateDone,
			Channel: domain.Channel{ID: "600000000000000001", Name: "team"},
		}
		service.EXPECT().
			Submit(gomock.Any(), domain.ChannelRequest{
				InteractionID: "500000000000000002",
				GuildID:       guildID,
				RequesterID:   "300000000000000001",
				RequesterName: "alice",
				Name:          "team",
				Members:       "<@300000000000000002>",
			}).
			DoAndReturn(func(ctx context.Context, _ domain.ChannelRequest) domain.Outcome {
				_, hasDeadline := ctx.Deadline()
				req.True(hasDeadline)
				return outcome
			})

		bot.handleInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			ID:      "500000000000000002",
			Type:    discordgo.InteractionModalSubmit,
			GuildID: guildID,
			Member:  member,
			Data: discordgo.ModalSubmitInteractionData{
				CustomID: RequestModalID,
				Components: []discordgo.MessageComponent{
					&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
						&discordgo.TextInput{CustomID: ChannelNameFieldID, Value: " team "},
					}},
					&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
						&discordgo.TextInput{CustomID: MembersFieldID, Value: "<@300000000000000002>"},
					}},
				},
			},
		}})

		req.Len(api.responses, 1)
		req.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, api.responses[0].Type)
		req.Equal(discordgo.MessageFlagsEphemeral, api.responses[0].Data.Flags)
		req.Len(api.edits, 1)
		req.Equal(fmt.Sprintf("✅ Created channel <#%s>.", "600000000000000001"), *api.edits[0].Content)
	})

	t.Run("should refuse a submission outside of a guild", func(t *testing.T) {
		req := require.New(t)
		api := &fakeAPI{}
		bot, _ := newTestBot(t, api)

		bot.handleInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionModalSubmit,
			User: member.User,
			Data: discordgo.ModalSubmitInteractionData{CustomID: RequestModalID},
		}})

		req.Len(api.responses, 1)
		req.Equal(discordgo.InteractionResponseChannelMessageWithSource, api.responses[0].Type)
		req.Empty(api.edits)
	})
}

func TestRequestModal(t *testing.T) {
	t.Run("should cap the text inputs at the request limits", func(t *testing.T) {
		req := require.New(t)

		rows := RequestModal().Data.Components
		req.Len(rows, 2)
		name := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
		members := rows[1].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)

		req.Equal(ChannelNameFieldID, name.CustomID)
		req.Equal(domain.MaxChannelNameLength, name.MaxLength)
		req.Equal(MembersFieldID, members.CustomID)
		req.Equal(domain.MaxMembersLength, members.MaxLength)
	})
}

func TestModalFields(t *testing.T) {
	t.Run("should read pointer and value components", func(t *testing.T) {
		req := require.New(t)

		fields := ModalFields(discordgo.ModalSubmitInteractionData{
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: ChannelNameFieldID, Value: "team"},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: MembersFieldID, Value: " bob \n"},
				}},
			},
		})

		req.Equal(map[string]string{ChannelNameFieldID: "team", MembersFieldID: "bob"}, fields)
	})
}
