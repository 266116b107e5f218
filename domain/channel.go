package domain

// ProvisionRequest is everything needed for one channel creation call. It lives for a
// single interaction.
type ProvisionRequest struct {
	GuildID  string
	Name     string
	ParentID string
	Entries  []AccessEntry
}

// Channel is the handle of a created channel.
type Channel struct {
	ID       string
	Name     string
	ParentID string
}

func (c Channel) Mention() string {
	return "<#" + c.ID + ">"
}

// Category is a grouping container channels are created under.
type Category struct {
	ID         string
	Name       string
	IsCategory bool
}

// ChannelSettings are the identifiers read when a request is handled, not at start up,
// so a missing value is reported to the requester instead of stopping the bot.
type ChannelSettings struct {
	ModeratorRoleID string
	CategoryID      string
}

// ProvisionParams is what the provisioner needs to build a ProvisionRequest.
type ProvisionParams struct {
	GuildID         string
	Name            string
	ParentID        string
	RequesterID     MemberID
	ModeratorRoleID string
	MemberIDs       []MemberID
}
