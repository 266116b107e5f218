package discord

import (
	"channel-request/domain"
	"channel-request/errors"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Directory answers member and category lookups from the session state first and the
// REST API second.
type Directory struct {
	session *discordgo.Session
}

func NewDirectory(session *discordgo.Session) *Directory {
	return &Directory{session: session}
}

func (d *Directory) Member(ctx context.Context, guildID string, id domain.MemberID) (domain.Member, error) {
	if d.session.State != nil {
		if member, err := d.session.State.Member(guildID, id.String()); err == nil && member.User != nil {
			return toMember(member), nil
		}
	}
	member, err := d.session.GuildMember(guildID, id.String(), discordgo.WithContext(ctx))
	if err != nil {
		return domain.Member{}, fmt.Errorf("%w: %s: %v", errors.ErrMemberNotFound, id, err)
	}
	if member.User == nil {
		return domain.Member{}, fmt.Errorf("%w: %s", errors.ErrMemberNotFound, id)
	}
	return toMember(member), nil
}

func (d *Directory) SearchMembers(ctx context.Context, guildID, query string, limit int) ([]domain.Member, error) {
	members, err := d.session.GuildMembersSearch(guildID, query, limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return toMembers(members), nil
}

// CachedMembers returns the members the gateway has delivered so far. Without the
// privileged members intent this is only a fraction of the guild.
func (d *Directory) CachedMembers(guildID string) []domain.Member {
	if d.session.State == nil {
		return nil
	}
	guild, err := d.session.State.Guild(guildID)
	if err != nil {
		return nil
	}
	d.session.State.RLock()
	defer d.session.State.RUnlock()
	return toMembers(guild.Members)
}

func (d *Directory) Category(ctx context.Context, guildID, categoryID string) (domain.Category, error) {
	var channel *discordgo.Channel
	if d.session.State != nil {
		channel, _ = d.session.State.Channel(categoryID)
	}
	if channel == nil {
		fetched, err := d.session.Channel(categoryID, discordgo.WithContext(ctx))
		if err != nil {
			return domain.Category{}, err
		}
		channel = fetched
	}
	return domain.Category{
		ID:         channel.ID,
		Name:       channel.Name,
		IsCategory: channel.Type == discordgo.ChannelTypeGuildCategory && channel.GuildID == guildID,
	}, nil
}

func toMember(member *discordgo.Member) domain.Member {
	return domain.Member{
		ID:         domain.MemberID(member.User.ID),
		Username:   member.User.Username,
		GlobalName: member.User.GlobalName,
		Nick:       member.Nick,
	}
}

func toMembers(members []*discordgo.Member) []domain.Member {
	return lo.FilterMap(members, func(member *discordgo.Member, _ int) (domain.Member, bool) {
		if member == nil || member.User == nil {
			return domain.Member{}, false
		}
		return toMember(member), true
	})
}
