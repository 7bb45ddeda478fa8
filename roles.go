package auth

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether this role may manage site content.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []Role {
	return []Role{
		RoleGuest,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
