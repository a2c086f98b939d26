package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// AdminHandler exposes the admin panel's account endpoints.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: adminService}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	admin, token, exp, err := h.admins.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"token":      token,
			"expires_at": exp,
			"admin":      dto.NewAdminView(admin),
		},
	})
}

// AddAdmin handles POST /admin/add-admin (superadmin only).
func (h *AdminHandler) AddAdmin(c *fiber.Ctx) error {
	var req dto.AddAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	admin, err := h.admins.AddAdmin(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"admin": dto.NewAdminView(admin)},
	})
}

// HandoverSuperAdmin handles PUT /admin/handover-superadmin (superadmin only).
func (h *AdminHandler) HandoverSuperAdmin(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.HandoverRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	newSuper, err := h.admins.HandoverSuperAdmin(c.UserContext(), principal.AdminID, req.NewSuperAdminID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"newSuperAdmin": fiber.Map{
				"id":       newSuper.ID,
				"username": newSuper.Username,
				"role":     newSuper.Role,
			},
		},
	})
}

// GetAllAdmins handles GET /admin/getAllAdmins.
func (h *AdminHandler) GetAllAdmins(c *fiber.Ctx) error {
	admins, err := h.admins.ListAdmins(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"admins": dto.NewAdminViews(admins)},
	})
}
