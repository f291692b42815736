package handler

import (
	"errors"

	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Fail maps a service error onto its HTTP status so callers can tell a
// missing resource from a conflict from a storage outage. Middleware that
// denies a request reports through the same mapper.
func Fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalid):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, service.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}
