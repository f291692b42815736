package handler

import (
	"strconv"

	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(stats)
}

// GetStockMovement returns per-day IN/OUT sums for charts
// Query params: days (default 7)
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetStockMovement(days)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"period": days, "data": data})
}

func (h *DashboardHandler) GetRecentProducts(c *fiber.Ctx) error {
	products, err := h.service.GetRecentProducts()
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(products)
}

func (h *DashboardHandler) GetLowStockProducts(c *fiber.Ctx) error {
	products, err := h.service.GetLowStockProducts()
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(products)
}
