package domain

// Permission is the subset of channel permissions the bot grants or denies.
// Adapters translate it to the platform bit values.
type Permission uint8

const (
	PermissionView Permission = 1 << iota
	PermissionSend

	PermissionNone        Permission = 0
	PermissionViewAndSend            = PermissionView | PermissionSend
)

func (p Permission) Has(other Permission) bool {
	return p&other == other
}

type PrincipalKind int

const (
	PrincipalRole PrincipalKind = iota
	PrincipalMember
)

// Principal is whoever an access entry applies to. The everyone role of a guild shares
// the guild's id.
type Principal struct {
	ID   string
	Kind PrincipalKind
}

func EveryoneOf(guildID string) Principal {
	return Principal{ID: guildID, Kind: PrincipalRole}
}

func RolePrincipal(roleID string) Principal {
	return Principal{ID: roleID, Kind: PrincipalRole}
}

func MemberPrincipal(id MemberID) Principal {
	return Principal{ID: string(id), Kind: PrincipalMember}
}

// AccessEntry is a permission overwrite attached to a channel.
type AccessEntry struct {
	Principal Principal
	Allow     Permission
	Deny      Permission
}
