package repository

import (
	"go-stockledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryFilter struct {
	Search string
	Status model.CategoryStatus
	Page   int
	Limit  int
}

type CategoryRepository interface {
	Create(category *model.Category) error
	CountBySlug(slug string) (int64, error)
	FindBySlug(slug string) (*model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindAll(filter CategoryFilter) ([]model.Category, int64, error)
	FindAllActive() ([]model.Category, error)
	UpdateFields(slug string, fields map[string]interface{}) error
	SoftDelete(slug string) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

// CountBySlug is the existence check used before creation. Unscoped: a
// soft-deleted category still holds the slug's unique index entry.
func (r *categoryRepo) CountBySlug(slug string) (int64, error) {
	var count int64
	err := r.db.Unscoped().Model(&model.Category{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count, err
}

func (r *categoryRepo) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindAll(filter CategoryFilter) ([]model.Category, int64, error) {
	query := r.db.Model(&model.Category{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR slug ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&categories).Error
	return categories, total, err
}

// FindAllActive lists selectable categories for product forms.
func (r *categoryRepo) FindAllActive() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("status = ?", model.CategoryActive).
		Order("title ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) UpdateFields(slug string, fields map[string]interface{}) error {
	return r.db.Model(&model.Category{}).
		Where("slug = ?", slug).
		Updates(fields).Error
}

func (r *categoryRepo) SoftDelete(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&model.Category{}).Error
}
