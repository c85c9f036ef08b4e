package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/excel"
	"github.com/carewellhq/clinic-admin/internal/models"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	service *services.StaffService
}

func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	staff, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrStaffFieldsRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("add staff failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to add staff", Success: false,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"staff": staff})
}

// ListByCenter pages staff of a center; the :id path param is the center id.
func (h *StaffHandler) ListByCenter(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	staff, pagination, err := h.service.ListByCenter(c.Params("id"), page)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("list staff failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch staff", Success: false,
		})
	}
	return c.JSON(fiber.Map{"staff": staff, "pagination": pagination})
}

func (h *StaffHandler) ListIR(c *fiber.Ctx) error {
	return h.listByFlag(c, h.service.ListIR)
}

func (h *StaffHandler) ListOther(c *fiber.Ctx) error {
	return h.listByFlag(c, h.service.ListOther)
}

func (h *StaffHandler) listByFlag(c *fiber.Ctx, list func(string) ([]models.Staff, error)) error {
	staff, err := list(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("list staff failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch staff", Success: false,
		})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("get staff failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to fetch staff", Success: false,
		})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	staff, err := h.service.Update(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		// update-path store errors surface as 400
		slog.Error("update staff failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: err.Error(), Success: false,
		})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	staff, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrStaffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		}
		slog.Error("delete staff failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to delete staff", Success: false,
		})
	}
	return c.JSON(fiber.Map{"staff": staff})
}

// Search matches staff within a center; the :id path param is the center id.
func (h *StaffHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body", Success: false,
		})
	}

	staff, pagination, err := h.service.Search(c.Params("id"), req.Search)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSearchTermRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		case errors.Is(err, services.ErrStaffNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: err.Error(), Success: false,
			})
		default:
			slog.Error("search staff failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Message: "Failed to search staff", Success: false,
			})
		}
	}
	return c.JSON(fiber.Map{"staff": staff, "pagination": pagination})
}

func (h *StaffHandler) DownloadExcel(c *fiber.Ctx) error {
	data, filename, err := h.service.Export(
		c.Query("centerId"),
		c.Query("occupation"),
		c.Query("address"),
	)
	if err != nil {
		slog.Error("staff export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Failed to export staff", Success: false,
		})
	}

	c.Set(fiber.HeaderContentType, excel.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
