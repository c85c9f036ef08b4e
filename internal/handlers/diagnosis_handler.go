package handlers

import (
	"errors"
	"log/slog"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DiagnosisHandler struct {
	service *services.DiagnosisService
}

func NewDiagnosisHandler(service *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: service}
}

func (h *DiagnosisHandler) Create(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	diagnosis, err := h.service.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDiagnosisNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("add diagnosis failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to add diagnosis", Success: false,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"diagnosis": diagnosis})
}

func (h *DiagnosisHandler) List(c *fiber.Ctx) error {
	diagnoses, err := h.service.List()
	if err != nil {
		slog.Error("list diagnoses failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch diagnoses", Success: false,
		})
	}
	return c.JSON(fiber.Map{"diagnoses": diagnoses})
}

func (h *DiagnosisHandler) Get(c *fiber.Ctx) error {
	diagnosis, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrDiagnosisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("get diagnosis failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch diagnosis", Success: false,
		})
	}
	return c.JSON(fiber.Map{"diagnosis": diagnosis})
}

func (h *DiagnosisHandler) Update(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	diagnosis, err := h.service.Update(c.Params("id"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiagnosisNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		case errors.Is(err, services.ErrDiagnosisNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		default:
			// update-path store errors surface as 400
			slog.Error("update diagnosis failed", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
	}
	return c.JSON(fiber.Map{"diagnosis": diagnosis})
}

func (h *DiagnosisHandler) Delete(c *fiber.Ctx) error {
	diagnosis, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrDiagnosisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("delete diagnosis failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to delete diagnosis", Success: false,
		})
	}
	return c.JSON(fiber.Map{"diagnosis": diagnosis})
}
