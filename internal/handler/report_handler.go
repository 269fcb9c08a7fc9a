package handler

import (
	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.DashboardService
}

func NewReportHandler(s service.DashboardService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func (h *ReportHandler) GetDailySummaries(c *fiber.Ctx) error {
	summaries, err := h.service.GetDailySummaries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summaries)
}

func (h *ReportHandler) UpsertDailySummary(c *fiber.Ctx) error {
	var rec model.DailySummary
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpsertDailySummary(&rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Daily summary saved"})
}
