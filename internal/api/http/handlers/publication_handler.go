package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// PublicationHandler exposes article and podcast endpoints.
type PublicationHandler struct {
	pubs *service.PublicationService
}

// NewPublicationHandler constructs handler.
func NewPublicationHandler(pubService *service.PublicationService) *PublicationHandler {
	return &PublicationHandler{pubs: pubService}
}

// List handles GET /publications, optionally filtered with ?kind=article|podcast.
func (h *PublicationHandler) List(c *fiber.Ctx) error {
	var kind *domain.PublicationKind
	if q := c.Query("kind"); q != "" {
		parsed := domain.PublicationKind(q)
		if parsed != domain.KindArticle && parsed != domain.KindPodcast {
			return apperrors.NewValidationError("unknown kind", map[string]any{"kind": q})
		}
		kind = &parsed
	}
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	pubs, err := h.pubs.List(c.UserContext(), kind, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"publications": dto.NewPublicationViews(pubs)}})
}

// Get handles GET /publications/:id.
func (h *PublicationHandler) Get(c *fiber.Ctx) error {
	pub, err := h.pubs.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"publication": dto.NewPublicationView(pub)}})
}

// Create handles POST /publications (admin only).
func (h *PublicationHandler) Create(c *fiber.Ctx) error {
	input, err := parsePublicationInput(c)
	if err != nil {
		return err
	}
	pub, err := h.pubs.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"publication": dto.NewPublicationView(pub)}})
}

// Update handles PUT /publications/:id (admin only).
func (h *PublicationHandler) Update(c *fiber.Ctx) error {
	input, err := parsePublicationInput(c)
	if err != nil {
		return err
	}
	pub, err := h.pubs.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"publication": dto.NewPublicationView(pub)}})
}

// Delete handles DELETE /publications/:id (admin only).
func (h *PublicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.pubs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parsePublicationInput(c *fiber.Ctx) (service.PublicationInput, error) {
	var req dto.PublicationRequest
	if err := c.BodyParser(&req); err != nil {
		return service.PublicationInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.PublicationInput{}, err
	}
	return service.PublicationInput{
		Title:       req.Title,
		Kind:        domain.PublicationKind(req.Kind),
		Summary:     req.Summary,
		ContentURL:  req.ContentURL,
		PublishedAt: req.PublishedAt,
	}, nil
}
