package middleware

import (
	"fmt"
	"strings"

	"go-stockledger/internal/handler"
	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/service"
	"go-stockledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and loads the caller into the
// request context.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if user.Status != model.UserActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is not active"})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireEditor gates write operations. Every mutation route carries this
// check, including stock adjustments: only active admins may mutate.
func RequireEditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*model.User)
		if !ok || !user.CanMutate() {
			return handler.Fail(c, fmt.Errorf("%w: only admins can edit", service.ErrForbidden))
		}
		return c.Next()
	}
}
