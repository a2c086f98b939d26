package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// EventHandler exposes event endpoints.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler constructs handler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{events: eventService}
}

// List handles GET /events. The public listing shows published events;
// an authenticated panel passes ?all=true to include drafts.
func (h *EventHandler) List(c *fiber.Ctx) error {
	if c.Query("all") == "true" {
		// Drafts are panel-only; anonymous callers never see them.
		if _, ok := auth.PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("draft listing requires authentication")
		}
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		offset, _ := strconv.Atoi(c.Query("offset", "0"))
		events, err := h.events.ListAll(c.UserContext(), limit, offset)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"events": dto.NewEventViews(events)}})
	}

	events, err := h.events.ListPublished(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"events": dto.NewEventViews(events)}})
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"event": dto.NewEventView(event)}})
}

// Create handles POST /events (admin only).
func (h *EventHandler) Create(c *fiber.Ctx) error {
	input, err := parseEventInput(c)
	if err != nil {
		return err
	}
	event, err := h.events.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"event": dto.NewEventView(event)}})
}

// Update handles PUT /events/:id (admin only).
func (h *EventHandler) Update(c *fiber.Ctx) error {
	input, err := parseEventInput(c)
	if err != nil {
		return err
	}
	event, err := h.events.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"event": dto.NewEventView(event)}})
}

// Delete handles DELETE /events/:id (admin only).
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseEventInput(c *fiber.Ctx) (service.EventInput, error) {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return service.EventInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.EventInput{}, err
	}
	return service.EventInput{
		Title:         req.Title,
		Description:   req.Description,
		StartsAt:      req.StartsAt,
		Venue:         req.Venue,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
	}, nil
}
