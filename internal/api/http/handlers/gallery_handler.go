package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/dto"
	"github.com/ficmh/techfest-api/internal/service"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// GalleryHandler exposes gallery album endpoints.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: galleryService}
}

// List handles GET /albums.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	albums, err := h.gallery.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"albums": dto.NewAlbumViews(albums)}})
}

// Get handles GET /albums/:id.
func (h *GalleryHandler) Get(c *fiber.Ctx) error {
	album, err := h.gallery.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"album": dto.NewAlbumView(album)}})
}

// Create handles POST /albums (admin only).
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	input, err := parseAlbumInput(c)
	if err != nil {
		return err
	}
	album, err := h.gallery.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"album": dto.NewAlbumView(album)}})
}

// Update handles PUT /albums/:id (admin only).
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	input, err := parseAlbumInput(c)
	if err != nil {
		return err
	}
	album, err := h.gallery.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"album": dto.NewAlbumView(album)}})
}

// Delete handles DELETE /albums/:id (admin only).
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	if err := h.gallery.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseAlbumInput(c *fiber.Ctx) (service.AlbumInput, error) {
	var req dto.AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return service.AlbumInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return service.AlbumInput{}, err
	}
	return service.AlbumInput{
		Title:         req.Title,
		Description:   req.Description,
		EventID:       req.EventID,
		CoverImageURL: req.CoverImageURL,
		ImageURLs:     req.ImageURLs,
	}, nil
}
