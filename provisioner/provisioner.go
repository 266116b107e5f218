package provisioner

import (
	"channel-request/contract"
	"channel-request/domain"
	"channel-request/errors"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// Provisioner creates private text channels. Every call creates a new channel:
// there is no idempotency key and nothing is rolled back.
type Provisioner struct {
	directory contract.IDirectory
	creator   contract.IChannelCreator
	log       *slog.Logger
}

func NewProvisioner(directory contract.IDirectory, creator contract.IChannelCreator, log *slog.Logger) *Provisioner {
	return &Provisioner{directory: directory, creator: creator, log: log}
}

func (p *Provisioner) Provision(ctx context.Context, params domain.ProvisionParams) (domain.Channel, error) {
	// 1. The parent must be an existing category, otherwise the bot is misconfigured
	if params.ParentID == "" {
		return domain.Channel{}, fmt.Errorf("%w: no parent category", errors.ErrConfigMissing)
	}
	category, err := p.directory.Category(ctx, params.GuildID, params.ParentID)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("%w: parent %s: %v", errors.ErrConfigInvalid, params.ParentID, err)
	}
	if !category.IsCategory {
		return domain.Channel{}, fmt.Errorf("%w: parent %s is not a category", errors.ErrConfigInvalid, params.ParentID)
	}

	// 2. One creation request, no retry
	request := domain.ProvisionRequest{
		GuildID:  params.GuildID,
		Name:     params.Name,
		ParentID: params.ParentID,
		Entries:  BuildAccessList(params.GuildID, params.RequesterID, params.ModeratorRoleID, params.MemberIDs),
	}
	channel, err := p.creator.CreateChannel(ctx, request)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("%w: %v", errors.ErrCreationFailed, err)
	}

	p.log.Info("Private channel created",
		"guild", params.GuildID, "channel", channel.ID, "name", channel.Name,
		"requester", params.RequesterID, "entries", len(request.Entries))
	return channel, nil
}

// BuildAccessList hides the channel from everyone and opens it to the moderator role,
// the requester and each member once. The requester is never listed twice.
func BuildAccessList(guildID string, requesterID domain.MemberID, moderatorRoleID string, memberIDs []domain.MemberID) []domain.AccessEntry {
	entries := []domain.AccessEntry{
		{Principal: domain.EveryoneOf(guildID), Deny: domain.PermissionView},
	}
	if moderatorRoleID != "" && moderatorRoleID != guildID {
		entries = append(entries, domain.AccessEntry{
			Principal: domain.RolePrincipal(moderatorRoleID),
			Allow:     domain.PermissionViewAndSend,
		})
	}
	entries = append(entries, domain.AccessEntry{
		Principal: domain.MemberPrincipal(requesterID),
		Allow:     domain.PermissionViewAndSend,
	})

	members := lo.Without(lo.Uniq(memberIDs), requesterID, "")
	for _, id := range members {
		entries = append(entries, domain.AccessEntry{
			Principal: domain.MemberPrincipal(id),
			Allow:     domain.PermissionViewAndSend,
		})
	}
	return entries
}
