package handler

import (
	"strconv"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateProduct(&product)
	if err != nil {
		return Fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": created})
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	filter := repository.ProductFilter{
		Search: c.Query("search"),
		Status: model.ProductStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	products, total, err := h.service.GetProducts(filter)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetStockHistory(c *fiber.Ctx) error {
	entries, err := h.service.GetStockHistory(c.Params("slug"))
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(fiber.Map{"history": entries})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var req model.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(c.Params("slug"), &req)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product updated successfully", "data": updated})
}

func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var req model.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.AdjustStock(c.Params("slug"), &req)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Stock updated successfully", "data": updated})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("slug")); err != nil {
		return Fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}
