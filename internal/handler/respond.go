package handler

import (
	"errors"

	"go-hardware-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the service/store error taxonomy onto HTTP statuses:
// missing keys are 404, business-rule and validation failures are 400, and
// everything else, the locked-workbook and flush failures included, is a
// 500. The message is the error text itself; nothing internal leaks
// through it.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		return fiber.StatusNotFound
	}

	var conflict *service.ConflictError
	var insufficient *service.InsufficientStockError
	var invalid *service.ValidationError
	if errors.As(err, &conflict) || errors.As(err, &insufficient) || errors.As(err, &invalid) {
		return fiber.StatusBadRequest
	}

	return fiber.StatusInternalServerError
}
