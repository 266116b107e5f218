package discord

import (
	"channel-request/domain"
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

type ChannelCreator struct {
	session *discordgo.Session
}

func NewChannelCreator(session *discordgo.Session) *ChannelCreator {
	return &ChannelCreator{session: session}
}

func (c *ChannelCreator) CreateChannel(ctx context.Context, req domain.ProvisionRequest) (domain.Channel, error) {
	channel, err := c.session.GuildChannelCreateComplex(req.GuildID, discordgo.GuildChannelCreateData{
		Name:                 req.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             req.ParentID,
		PermissionOverwrites: ToOverwrites(req.Entries),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, err
	}
	return domain.Channel{ID: channel.ID, Name: channel.Name, ParentID: channel.ParentID}, nil
}

// ToOverwrites maps access entries to the platform permission overwrites.
func ToOverwrites(entries []domain.AccessEntry) []*discordgo.PermissionOverwrite {
	return lo.Map(entries, func(entry domain.AccessEntry, _ int) *discordgo.PermissionOverwrite {
		return &discordgo.PermissionOverwrite{
			ID:    entry.Principal.ID,
			Type:  lo.Ternary(entry.Principal.Kind == domain.PrincipalRole, discordgo.PermissionOverwriteTypeRole, discordgo.PermissionOverwriteTypeMember),
			Allow: toBits(entry.Allow),
			Deny:  toBits(entry.Deny),
		}
	})
}

func toBits(permission domain.Permission) int64 {
	var bits int64
	if permission.Has(domain.PermissionView) {
		bits |= discordgo.PermissionViewChannel
	}
	if permission.Has(domain.PermissionSend) {
		bits |= discordgo.PermissionSendMessages
	}
	return bits
}
