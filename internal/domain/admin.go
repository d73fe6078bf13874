package domain

import (
	"slices"
	"time"
)

// AdminRole represents an administrator's privilege level.
type AdminRole string

const (
	// AdminRoleAdmin grants content-management access.
	AdminRoleAdmin AdminRole = "admin"
	// AdminRoleSuper grants full access including admin management.
	AdminRoleSuper AdminRole = "super_admin"
)

// Default permission set granted to new admins when none is specified.
var DefaultAdminPermissions = []string{
	"manage_users",
	"manage_places",
	"manage_playlists",
	"approve_content",
}

// Admin represents a back-office operator profile. Credentials and token
// issuing live with the external identity provider; this document only
// records who the admin is and what they may manage.
type Admin struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        AdminRole `json:"role"`
	Permissions []string  `json:"permissions"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasPermission checks whether the admin holds a named permission.
// Super admins implicitly hold every permission.
func (a *Admin) HasPermission(perm string) bool {
	if a.Role == AdminRoleSuper {
		return true
	}
	return slices.Contains(a.Permissions, perm)
}
