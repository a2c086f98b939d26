package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/domain"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, built entirely from token
// claims. The store is not consulted here, so a role changed after issue
// keeps its old privileges until the token expires (the staleness window).
type Principal struct {
	AdminID  string
	Username string
	Role     domain.AdminRole
}

// AuthMiddleware validates bearer tokens and attaches the principal.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{
		AdminID:  claims.AdminID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	return c.Next()
}

// HandleOptional attaches a principal when a bearer token is presented and
// lets anonymous requests through. A presented but invalid token is still
// rejected.
func (m *AuthMiddleware) HandleOptional(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	return m.Handle(c)
}

// PrincipalFromContext retrieves the authenticated admin claim.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
