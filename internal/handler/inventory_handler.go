package handler

import (
	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddItem(&item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item added successfully"})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	itemCode := c.Params("item_code")

	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateItem(itemCode, &item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated successfully"})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	itemCode := c.Params("item_code")

	if err := h.service.DeleteItem(itemCode); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}
