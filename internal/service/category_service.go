package service

import (
	"errors"
	"fmt"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/pkg/validator"

	"gorm.io/gorm"
)

const categoriesPath = "/manage/categories"

type CategoryService interface {
	CreateCategory(req *model.Category) (*model.Category, error)
	GetCategories(filter repository.CategoryFilter) ([]model.Category, int64, error)
	GetAllActiveCategories() ([]model.Category, error)
	GetCategoryBySlug(slug string) (*model.Category, error)
	UpdateCategory(slug string, req *model.UpdateCategoryRequest) error
	DeleteCategory(slug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	notifier     Notifier
}

func NewCategoryService(cRepo repository.CategoryRepository, notifier Notifier) CategoryService {
	return &categoryService{categoryRepo: cRepo, notifier: notifier}
}

func (s *categoryService) CreateCategory(req *model.Category) (*model.Category, error) {
	if err := validator.Struct(req); err != nil {
		return nil, invalidErr(err)
	}

	count, err := s.categoryRepo.CountBySlug(req.Slug)
	if err != nil {
		return nil, storeErr(err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: category with this slug already exists", ErrConflict)
	}

	if err := s.categoryRepo.Create(req); err != nil {
		return nil, storeErr(err)
	}

	s.notifier.Revalidate(categoriesPath)
	return req, nil
}

func (s *categoryService) GetCategories(filter repository.CategoryFilter) ([]model.Category, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	categories, total, err := s.categoryRepo.FindAll(filter)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return categories, total, nil
}

func (s *categoryService) GetAllActiveCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAllActive()
	if err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}

func (s *categoryService) GetCategoryBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category not found", ErrNotFound)
		}
		return nil, storeErr(err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(slug string, req *model.UpdateCategoryRequest) error {
	if err := validator.Struct(req); err != nil {
		return invalidErr(err)
	}

	if _, err := s.categoryRepo.FindBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category not found", ErrNotFound)
		}
		return storeErr(err)
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		if err := s.categoryRepo.UpdateFields(slug, fields); err != nil {
			return storeErr(err)
		}
	}

	path := req.Path
	if path == "" {
		path = categoriesPath
	}
	s.notifier.Revalidate(path)
	return nil
}

// DeleteCategory soft-deletes; repeating the call is a no-op.
func (s *categoryService) DeleteCategory(slug string) error {
	if err := s.categoryRepo.SoftDelete(slug); err != nil {
		return storeErr(err)
	}
	s.notifier.Revalidate(categoriesPath)
	return nil
}
