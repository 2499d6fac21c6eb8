package model

// Role tags who produced a conversation turn.
type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

// Valid reports whether r is one of the accepted roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModel, RoleSystem:
		return true
	}
	return false
}

// Turn is one role-tagged message of a conversation.
type Turn struct {
	Role Role
	Text string
}
