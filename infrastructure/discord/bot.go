package discord

import (
	"channel-request/domain"
	"channel-request/errors"
	"channel-request/services"
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Intents needed to read the setup command and to keep a member cache for name lookups.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsGuildMembers

// api is the part of the session the handlers talk to.
type api interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot routes gateway events of one session to the channel request service.
type Bot struct {
	api     api
	service services.IChannelRequestService
	log     *slog.Logger
	timeout time.Duration
}

func NewBot(log *slog.Logger, service services.IChannelRequestService, timeout time.Duration) *Bot {
	return &Bot{service: service, log: log, timeout: timeout}
}

// Register attaches the handlers to the session. It must be called before Open.
func (b *Bot) Register(session *discordgo.Session) {
	b.api = session
	session.Identify.Intents = Intents
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info("Logged in", "user", r.User.String(), "guilds", len(r.Guilds))
	})
	session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(m)
	})
	session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(i)
	})
}

func (b *Bot) handleMessage(m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" || m.Content != SetupCommand {
		return
	}

	permissions, err := b.api.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.log.Warn("Permissions lookup failed", "guild", m.GuildID, "user", m.Author.ID, "error", err)
		return
	}
	if permissions&discordgo.PermissionAdministrator == 0 {
		b.log.Debug("Setup command ignored, not an administrator", "guild", m.GuildID, "user", m.Author.ID)
		return
	}

	if _, err = b.api.ChannelMessageSendComplex(m.ChannelID, RequestButtonMessage()); err != nil {
		b.log.Error("Request button not posted", "guild", m.GuildID, "channel", m.ChannelID, "error", err)
		return
	}
	b.log.Info("Request button posted", "guild", m.GuildID, "channel", m.ChannelID, "by", m.Author.ID)
}

func (b *Bot) handleInteraction(i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == RequestButtonID {
			b.openModal(i.Interaction)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == RequestModalID {
			b.submit(i.Interaction)
		}
	}
}

func (b *Bot) openModal(i *discordgo.Interaction) {
	user := requester(i)
	if i.GuildID == "" || user == nil {
		b.replyEphemeral(i, "❌ "+errors.ErrNotInGuild.Error())
		return
	}
	b.service.OpenRequest(i.GuildID, user.ID)
	if err := b.api.InteractionRespond(i, RequestModal()); err != nil {
		b.log.Error("Request modal not shown", "guild", i.GuildID, "user", user.ID, "error", err)
	}
}

func (b *Bot) submit(i *discordgo.Interaction) {
	user := requester(i)
	if i.GuildID == "" || user == nil {
		b.replyEphemeral(i, "❌ "+errors.ErrNotInGuild.Error())
		return
	}

	// 1. Acknowledge now, the platform only waits three seconds
	err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		b.log.Error("Interaction not acknowledged", "guild", i.GuildID, "user", user.ID, "error", err)
		return
	}

	// 2. Run the request
	fields := ModalFields(i.ModalSubmitData())
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	outcome := b.service.Submit(ctx, domain.ChannelRequest{
		InteractionID: lo.Ternary(i.ID != "", i.ID, uuid.NewString()),
		GuildID:       i.GuildID,
		RequesterID:   user.ID,
		RequesterName: user.Username,
		Name:          fields[ChannelNameFieldID],
		Members:       fields[MembersFieldID],
	})

	// 3. One reply, success or not
	if _, err = b.api.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: lo.ToPtr(outcome.Message())}); err != nil {
		b.log.Error("Reply not sent", "guild", i.GuildID, "user", user.ID, "state", outcome.State.String(), "error", err)
	}
}

func (b *Bot) replyEphemeral(i *discordgo.Interaction, content string) {
	err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		b.log.Error("Reply not sent", "interaction", i.ID, "error", err)
	}
}

func requester(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
