package service_test

import (
	"testing"

	"go-stockledger/internal/model"
	"go-stockledger/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("CountBySlug", "tools").Return(int64(1), nil)

	_, err := svc.CreateCategory(&model.Category{Slug: "tools", Title: "Tools"})

	assert.ErrorIs(t, err, service.ErrConflict)
	cRepo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Empty(t, notifier.paths)
}

// A soft-deleted category keeps its slug's unique index entry, so the slug
// stays taken and recreation must conflict rather than hit the constraint.
func TestCreateCategory_DeletedSlugStillConflicts(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("CountBySlug", "retired").Return(int64(1), nil)

	_, err := svc.CreateCategory(&model.Category{Slug: "retired", Title: "Retired"})

	assert.ErrorIs(t, err, service.ErrConflict)
	cRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCategory_Success(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("CountBySlug", "tools").Return(int64(0), nil)
	cRepo.On("Create", mock.Anything).Return(nil)

	created, err := svc.CreateCategory(&model.Category{Slug: "tools", Title: "Tools"})

	assert.NoError(t, err)
	assert.Equal(t, "tools", created.Slug)
	assert.Equal(t, []string{"/manage/categories"}, notifier.paths)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("FindBySlug", "missing").Return(nil, gorm.ErrRecordNotFound)

	title := "New title"
	err := svc.UpdateCategory("missing", &model.UpdateCategoryRequest{Title: &title})

	assert.ErrorIs(t, err, service.ErrNotFound)
	cRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateCategory_CustomRevalidationPath(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("FindBySlug", "tools").Return(&model.Category{Slug: "tools", Title: "Tools"}, nil)

	status := model.CategoryInactive
	cRepo.On("UpdateFields", "tools", map[string]interface{}{"status": status}).Return(nil)

	err := svc.UpdateCategory("tools", &model.UpdateCategoryRequest{Status: &status, Path: "/manage/categories/tools"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"/manage/categories/tools"}, notifier.paths)
	cRepo.AssertExpectations(t)
}

func TestDeleteCategory_SoftDeletes(t *testing.T) {
	cRepo := new(MockCategoryRepository)
	notifier := &fakeNotifier{}
	svc := service.NewCategoryService(cRepo, notifier)

	cRepo.On("SoftDelete", "tools").Return(nil)

	assert.NoError(t, svc.DeleteCategory("tools"))
	assert.Equal(t, []string{"/manage/categories"}, notifier.paths)
}
