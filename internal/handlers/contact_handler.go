package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/excel"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	contact, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrContactFieldsRequired) ||
			errors.Is(err, services.ErrContactInvalidEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("add contact failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to add contact", Success: false,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"contact": contact})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	search := c.Query("search")

	contacts, pagination, err := h.service.List(page, search)
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch contacts", Success: false,
		})
	}

	return c.JSON(fiber.Map{"contacts": contacts, "pagination": pagination})
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	contact, err := h.service.Update(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		// update-path store errors surface as 400
		slog.Error("update contact failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: err.Error(), Success: false,
		})
	}
	return c.JSON(fiber.Map{"contact": contact})
}

func (h *ContactHandler) DownloadExcel(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	data, filename, err := h.service.ExportRange(startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactDatesRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		case errors.Is(err, services.ErrNoContactsInRange):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		default:
			slog.Error("contacts export failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Message: "Failed to export contacts", Success: false,
			})
		}
	}

	c.Set(fiber.HeaderContentType, excel.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
