package entities

import "slices"

// Member is the guild member behind an interaction.
type Member struct {
	UserID      string
	DisplayName string
	RoleIDs     []string
}

func (m Member) HasRole(roleID string) bool {
	return roleID != "" && slices.Contains(m.RoleIDs, roleID)
}
