package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// SponsorHandler exposes sponsor endpoints.
type SponsorHandler struct {
	sponsors *service.SponsorService
}

// NewSponsorHandler constructs handler.
func NewSponsorHandler(sponsorService *service.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsors: sponsorService}
}

// List handles GET /sponsors.
func (h *SponsorHandler) List(c *fiber.Ctx) error {
	sponsors, err := h.sponsors.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"sponsors": dto.NewSponsorViews(sponsors)}})
}

// Create handles POST /sponsors (admin only).
func (h *SponsorHandler) Create(c *fiber.Ctx) error {
	input, err := parseSponsorInput(c)
	if err != nil {
		return err
	}
	sponsor, err := h.sponsors.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"sponsor": dto.NewSponsorView(sponsor)}})
}

// Update handles PUT /sponsors/:id (admin only).
func (h *SponsorHandler) Update(c *fiber.Ctx) error {
	input, err := parseSponsorInput(c)
	if err != nil {
		return err
	}
	sponsor, err := h.sponsors.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"sponsor": dto.NewSponsorView(sponsor)}})
}

// Delete handles DELETE /sponsors/:id (admin only).
func (h *SponsorHandler) Delete(c *fiber.Ctx) error {
	if err := h.sponsors.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseSponsorInput(c *fiber.Ctx) (service.SponsorInput, error) {
	var req dto.SponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return service.SponsorInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.SponsorInput{}, err
	}
	return service.SponsorInput{
		Name:       req.Name,
		Tier:       domain.SponsorTier(req.Tier),
		WebsiteURL: req.WebsiteURL,
		LogoURL:    req.LogoURL,
	}, nil
}
