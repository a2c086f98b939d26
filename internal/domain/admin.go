package domain

import "time"

// AdminRole enumerates privilege levels for panel accounts.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "superadmin"
)

// Valid reports whether the role is one of the known values.
func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Admin models a panel account. Exactly one record is expected to hold
// RoleSuperAdmin at any stable point; the handover operation is the only
// path that moves the role between records.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         AdminRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
