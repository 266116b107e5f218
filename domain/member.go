package domain

import "strings"

// MemberID is the snowflake of a guild member. It is only meaningful inside the guild
// it was resolved from.
type MemberID string

func (id MemberID) String() string {
	return string(id)
}

// Mention renders the id with the platform mention syntax.
func (id MemberID) Mention() string {
	return "<@" + string(id) + ">"
}

// Member is the directory view of a guild member, stripped of transport details.
type Member struct {
	ID         MemberID
	Username   string
	GlobalName string
	Nick       string
}

// DisplayName is the name the guild shows for the member: the nick first, then the
// global display name, then the username.
func (m Member) DisplayName() string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.GlobalName != "":
		return m.GlobalName
	default:
		return m.Username
	}
}

// MatchesName reports an exact case-insensitive match of name against any of the
// member's names.
func (m Member) MatchesName(name string) bool {
	if name == "" {
		return false
	}
	for _, candidate := range []string{m.Username, m.GlobalName, m.DisplayName(), m.Nick} {
		if candidate != "" && strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}
