package handlers

import (
	"errors"
	"log/slog"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthorHandler struct {
	service *services.AuthorService
}

func NewAuthorHandler(service *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

func (h *AuthorHandler) Create(c *fiber.Ctx) error {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	author, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrAuthorNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("add author failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to add author", Success: false,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"author": author})
}

func (h *AuthorHandler) List(c *fiber.Ctx) error {
	authors, err := h.service.List()
	if err != nil {
		slog.Error("list authors failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch authors", Success: false,
		})
	}
	return c.JSON(fiber.Map{"authors": authors})
}

func (h *AuthorHandler) Get(c *fiber.Ctx) error {
	author, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAuthorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("get author failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch author", Success: false,
		})
	}
	return c.JSON(fiber.Map{"author": author})
}

func (h *AuthorHandler) Update(c *fiber.Ctx) error {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	author, err := h.service.Update(c.Params("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		default:
			// update-path store errors surface as 400
			slog.Error("update author failed", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
	}
	return c.JSON(fiber.Map{"author": author})
}

func (h *AuthorHandler) Delete(c *fiber.Ctx) error {
	author, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAuthorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("delete author failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to delete author", Success: false,
		})
	}
	return c.JSON(fiber.Map{"author": author})
}

// Image serves the stored image as raw bytes; failures are bare status codes.
func (h *AuthorHandler) Image(c *fiber.Ctx) error {
	mime, data, err := h.service.Image(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthorNotFound),
			errors.Is(err, services.ErrAuthorImageMissing):
			return c.SendStatus(fiber.StatusNotFound)
		case errors.Is(err, services.ErrAuthorImageMalformed):
			return c.SendStatus(fiber.StatusBadRequest)
		default:
			slog.Error("author image failed", "error", err)
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}
