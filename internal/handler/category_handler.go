package handler

import (
	"strconv"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateCategory(&category)
	if err != nil {
		return Fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": created})
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	filter := repository.CategoryFilter{
		Search: c.Query("search"),
		Status: model.CategoryStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	categories, total, err := h.service.GetCategories(filter)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories, "total": total})
}

// GetActiveCategories lists the categories selectable on product forms.
func (h *CategoryHandler) GetActiveCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllActiveCategories()
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req model.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateCategory(c.Params("slug"), &req); err != nil {
		return Fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Category updated successfully"})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("slug")); err != nil {
		return Fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}
