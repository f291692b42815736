package service_test

import (
	"time"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) CreateWithHistory(product *model.Product, entry *model.StockHistory) error {
	args := m.Called(product, entry)
	return args.Error(0)
}

func (m *MockProductRepository) FindBySlug(slug string) (*model.Product, error) {
	args := m.Called(slug)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindBySlugUnscoped(slug string) (*model.Product, error) {
	args := m.Called(slug)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) CountBySlugOrSKU(slug, sku string) (int64, error) {
	args := m.Called(slug, sku)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindAll(filter repository.ProductFilter) ([]model.Product, int64, error) {
	args := m.Called(filter)
	if products, ok := args.Get(0).([]model.Product); ok {
		return products, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockProductRepository) FindRecent(limit int) ([]model.Product, error) {
	args := m.Called(limit)
	if products, ok := args.Get(0).([]model.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindLowStock(limit int) ([]model.Product, error) {
	args := m.Called(limit)
	if products, ok := args.Get(0).([]model.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Mutate(slug string, fn repository.MutateFunc) (*model.Product, error) {
	args := m.Called(slug, fn)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SoftDelete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

type MockStockHistoryRepository struct {
	mock.Mock
}

func (m *MockStockHistoryRepository) FindByProduct(productID uuid.UUID) ([]model.StockHistory, error) {
	args := m.Called(productID)
	if entries, ok := args.Get(0).([]model.StockHistory); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStockHistoryRepository) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	args := m.Called(startDate, endDate)
	if data, ok := args.Get(0).([]repository.StockMovementData); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStockHistoryRepository) GetDashboardStats() (*repository.DashboardStats, error) {
	args := m.Called()
	if stats, ok := args.Get(0).(*repository.DashboardStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountBySlug(slug string) (int64, error) {
	args := m.Called(slug)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(slug string) (*model.Category, error) {
	args := m.Called(slug)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	if c, ok := args.Get(0).(*model.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindAll(filter repository.CategoryFilter) ([]model.Category, int64, error) {
	args := m.Called(filter)
	if categories, ok := args.Get(0).([]model.Category); ok {
		return categories, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockCategoryRepository) FindAllActive() ([]model.Category, error) {
	args := m.Called()
	if categories, ok := args.Get(0).([]model.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) UpdateFields(slug string, fields map[string]interface{}) error {
	args := m.Called(slug, fields)
	return args.Error(0)
}

func (m *MockCategoryRepository) SoftDelete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	args := m.Called(userID, hashedPassword)
	return args.Error(0)
}

// fakeNotifier records revalidated paths instead of broadcasting them.
type fakeNotifier struct {
	paths []string
}

func (f *fakeNotifier) Revalidate(path string) {
	f.paths = append(f.paths, path)
}
