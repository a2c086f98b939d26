package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// TeamHandler exposes team member endpoints.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{team: teamService}
}

// List handles GET /team, optionally filtered with ?club=techfest|ficmh.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	var club *domain.Club
	if q := c.Query("club"); q != "" {
		parsed := domain.Club(q)
		if parsed != domain.ClubTechFest && parsed != domain.ClubFICMH {
			return apperrors.NewValidationError("unknown club", map[string]any{"club": q})
		}
		club = &parsed
	}

	members, err := h.team.List(c.UserContext(), club)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"team": dto.NewTeamMemberViews(members)}})
}

// Create handles POST /team (admin only).
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	input, err := parseTeamMemberInput(c)
	if err != nil {
		return err
	}
	member, err := h.team.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"member": dto.NewTeamMemberView(member)}})
}

// Update handles PUT /team/:id (admin only).
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	input, err := parseTeamMemberInput(c)
	if err != nil {
		return err
	}
	member, err := h.team.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"member": dto.NewTeamMemberView(member)}})
}

// Delete handles DELETE /team/:id (admin only).
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.team.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseTeamMemberInput(c *fiber.Ctx) (service.TeamMemberInput, error) {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return service.TeamMemberInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.TeamMemberInput{}, err
	}
	return service.TeamMemberInput{
		Name:         req.Name,
		Position:     req.Position,
		Club:         domain.Club(req.Club),
		PhotoURL:     req.PhotoURL,
		LinkedInURL:  req.LinkedInURL,
		InstagramURL: req.InstagramURL,
		DisplayOrder: req.DisplayOrder,
	}, nil
}
