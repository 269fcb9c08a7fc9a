package handler

import (
	"go-hardware-pos/internal/model"
	"go-hardware-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	var sale model.SaleTransaction
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saleID, err := h.service.RecordSale(&sale)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale processed successfully", "sale_id": saleID})
}

func (h *TransactionHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetAllPurchases()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

func (h *TransactionHandler) CreatePurchase(c *fiber.Ctx) error {
	var purchase model.PurchaseTransaction
	if err := c.BodyParser(&purchase); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	purchaseID, err := h.service.RecordPurchase(&purchase)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Purchase recorded successfully", "purchase_id": purchaseID})
}
