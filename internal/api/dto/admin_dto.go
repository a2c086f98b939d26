package dto

import (
	"time"

	"github.com/ficmh/techfest-api/internal/domain"
)

// AdminLoginRequest payload for login.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AddAdminRequest payload for creating a new admin account.
type AddAdminRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// HandoverRequest payload for transferring the superadmin role.
type HandoverRequest struct {
	NewSuperAdminID string `json:"newSuperAdminId" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminView is the sanitized admin representation; the password hash is
// never serialized.
type AdminView struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      domain.AdminRole `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewAdminView sanitizes a domain admin for API responses.
func NewAdminView(admin *domain.Admin) AdminView {
	return AdminView{
		ID:        admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// NewAdminViews sanitizes a slice of admins.
func NewAdminViews(admins []domain.Admin) []AdminView {
	views := make([]AdminView, 0, len(admins))
	for i := range admins {
		views = append(views, NewAdminView(&admins[i]))
	}
	return views
}
