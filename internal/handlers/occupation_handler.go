package handlers

import (
	"errors"
	"log/slog"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OccupationHandler struct {
	service *services.OccupationService
}

func NewOccupationHandler(service *services.OccupationService) *OccupationHandler {
	return &OccupationHandler{service: service}
}

func (h *OccupationHandler) Create(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	occupation, err := h.service.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrOccupationNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("add occupation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to add occupation", Success: false,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"occupation": occupation})
}

func (h *OccupationHandler) List(c *fiber.Ctx) error {
	occupations, err := h.service.List()
	if err != nil {
		slog.Error("list occupations failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch occupations", Success: false,
		})
	}
	return c.JSON(fiber.Map{"occupations": occupations})
}

func (h *OccupationHandler) Get(c *fiber.Ctx) error {
	occupation, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrOccupationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("get occupation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch occupation", Success: false,
		})
	}
	return c.JSON(fiber.Map{"occupation": occupation})
}

func (h *OccupationHandler) Update(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	occupation, err := h.service.Update(c.Params("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOccupationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		case errors.Is(err, services.ErrOccupationNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		default:
			// update-path store errors surface as 400
			slog.Error("update occupation failed", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
	}
	return c.JSON(fiber.Map{"occupation": occupation})
}

func (h *OccupationHandler) Delete(c *fiber.Ctx) error {
	occupation, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrOccupationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("delete occupation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to delete occupation", Success: false,
		})
	}
	return c.JSON(fiber.Map{"occupation": occupation})
}
