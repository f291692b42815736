package service

import (
	"errors"
	"fmt"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const productsPath = "/manage/products"

type ProductService interface {
	CreateProduct(req *model.Product) (*model.Product, error)
	GetProducts(filter repository.ProductFilter) ([]model.Product, int64, error)
	GetProductBySlug(slug string) (*model.Product, error)
	GetStockHistory(slug string) ([]model.StockHistory, error)
	UpdateProduct(slug string, req *model.UpdateProductRequest) (*model.Product, error)
	AdjustStock(slug string, req *model.AdjustStockRequest) (*model.Product, error)
	DeleteProduct(slug string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	historyRepo  repository.StockHistoryRepository
	categoryRepo repository.CategoryRepository
	notifier     Notifier
}

func NewProductService(
	pRepo repository.ProductRepository,
	hRepo repository.StockHistoryRepository,
	cRepo repository.CategoryRepository,
	notifier Notifier,
) ProductService {
	return &productService{
		productRepo:  pRepo,
		historyRepo:  hRepo,
		categoryRepo: cRepo,
		notifier:     notifier,
	}
}

// requireActiveCategory enforces referential existence: a product may only
// point at an undeleted, active category. The store does not enforce this.
func (s *productService) requireActiveCategory(id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category does not exist", ErrNotFound)
		}
		return storeErr(err)
	}
	if category.Status != model.CategoryActive {
		return fmt.Errorf("%w: category is not active", ErrNotFound)
	}
	return nil
}

func (s *productService) CreateProduct(req *model.Product) (*model.Product, error) {
	if err := validator.Struct(req); err != nil {
		return nil, invalidErr(err)
	}

	// Single combined existence query over both unique keys
	count, err := s.productRepo.CountBySlugOrSKU(req.Slug, req.SKU)
	if err != nil {
		return nil, storeErr(err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: product with this slug or SKU already exists", ErrConflict)
	}

	if err := s.requireActiveCategory(req.CategoryID); err != nil {
		return nil, err
	}

	// Initial stock is only auditable when an acting identity is known
	var entry *model.StockHistory
	if change := InitialStock(req.Quantity); change != nil && req.AuthorID != nil {
		entry = change.Entry(req.AuthorID)
	}

	if err := s.productRepo.CreateWithHistory(req, entry); err != nil {
		return nil, storeErr(err)
	}

	s.notifier.Revalidate(productsPath)
	return req, nil
}

func (s *productService) GetProducts(filter repository.ProductFilter) ([]model.Product, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	products, total, err := s.productRepo.FindAll(filter)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return products, total, nil
}

func (s *productService) GetProductBySlug(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, storeErr(err)
	}
	return product, nil
}

// GetStockHistory lists the product's ledger newest first. The lookup
// includes soft-deleted products: their entries stay readable.
func (s *productService) GetStockHistory(slug string) ([]model.StockHistory, error) {
	product, err := s.productRepo.FindBySlugUnscoped(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, storeErr(err)
	}

	entries, err := s.historyRepo.FindByProduct(product.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// UpdateProduct applies a partial edit. When the request carries a changed
// quantity and the product has an attributable author, a ledger entry is
// written before the field update; both land in one transaction. Products
// without an author still get the quantity written, just without audit.
func (s *productService) UpdateProduct(slug string, req *model.UpdateProductRequest) (*model.Product, error) {
	if err := validator.Struct(req); err != nil {
		return nil, invalidErr(err)
	}

	if req.CategoryID != nil {
		if err := s.requireActiveCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.Mutate(slug, func(current *model.Product) (*repository.ProductMutation, error) {
		mutation := &repository.ProductMutation{Fields: updateFields(req)}

		if req.Quantity != nil {
			change := QuantityUpdate(current.Quantity, *req.Quantity)
			if change != nil && current.AuthorID != nil {
				mutation.History = change.Entry(current.AuthorID)
			}
		}
		return mutation, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, storeErr(err)
	}

	path := req.Path
	if path == "" {
		path = productsPath
	}
	s.notifier.Revalidate(path)
	return product, nil
}

// AdjustStock applies an explicit directional movement. A ledger entry is
// always written for this path, attributed to the product's stored author
// (which may be absent), never to the request.
func (s *productService) AdjustStock(slug string, req *model.AdjustStockRequest) (*model.Product, error) {
	if err := validator.Struct(req); err != nil {
		return nil, invalidErr(err)
	}

	product, err := s.productRepo.Mutate(slug, func(current *model.Product) (*repository.ProductMutation, error) {
		change := Adjust(current.Quantity, req.Action, req.Amount, req.Note)
		return &repository.ProductMutation{
			Fields:  map[string]interface{}{"quantity": change.NewQuantity},
			History: change.Entry(current.AuthorID),
		}, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, storeErr(err)
	}

	s.notifier.Revalidate(productsPath)
	return product, nil
}

// DeleteProduct soft-deletes: the row is marked destroyed, history entries
// stay untouched. Repeating the call is a no-op.
func (s *productService) DeleteProduct(slug string) error {
	if err := s.productRepo.SoftDelete(slug); err != nil {
		return storeErr(err)
	}
	s.notifier.Revalidate(productsPath)
	return nil
}

// updateFields maps the provided (non-nil) request fields onto columns.
// The slug is the immutable lookup key and is never part of the update.
func updateFields(req *model.UpdateProductRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.MinQuantity != nil {
		fields["min_quantity"] = *req.MinQuantity
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	return fields
}
