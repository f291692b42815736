package repository

import (
	"go-stockledger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows product listings. Zero values mean "no filter";
// Page/Limit are 1-based pagination knobs.
type ProductFilter struct {
	Search string
	Status model.ProductStatus
	Page   int
	Limit  int
}

// ProductMutation describes the writes to apply to a locked product row.
// History, when present, is inserted before the field update within the
// same transaction so the pair commits or rolls back together.
type ProductMutation struct {
	Fields  map[string]interface{}
	History *model.StockHistory
}

// MutateFunc computes the writes for a product mutation. It runs while the
// product row is locked, so Current reflects the quantity no concurrent
// writer can change underneath it.
type MutateFunc func(current *model.Product) (*ProductMutation, error)

type ProductRepository interface {
	Create(product *model.Product) error
	CreateWithHistory(product *model.Product, entry *model.StockHistory) error
	FindBySlug(slug string) (*model.Product, error)
	FindBySlugUnscoped(slug string) (*model.Product, error)
	CountBySlugOrSKU(slug, sku string) (int64, error)
	FindAll(filter ProductFilter) ([]model.Product, int64, error)
	FindRecent(limit int) ([]model.Product, error)
	FindLowStock(limit int) ([]model.Product, error)
	Mutate(slug string, fn MutateFunc) (*model.Product, error)
	SoftDelete(slug string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// CreateWithHistory persists a new product and, when entry is non-nil, its
// initial-stock ledger entry in one transaction.
func (r *productRepo) CreateWithHistory(product *model.Product, entry *model.StockHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if entry != nil {
			entry.ProductID = product.ID
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Author").First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlugUnscoped also matches soft-deleted products. Used for ledger
// reads, which outlive product deletion.
func (r *productRepo) FindBySlugUnscoped(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.Unscoped().First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CountBySlugOrSKU is the combined existence check used before creation.
// Unscoped: soft-deleted rows still occupy the slug/sku unique indexes, so
// they must count as taken.
func (r *productRepo) CountBySlugOrSKU(slug, sku string) (int64, error) {
	var count int64
	err := r.db.Unscoped().Model(&model.Product{}).
		Where("slug = ? OR sku = ?", slug, sku).
		Count(&count).Error
	return count, err
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.Preload("Category").Preload("Author").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindRecent(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindLowStock(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("quantity > 0 AND quantity <= min_quantity").
		Order("quantity ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Mutate runs fn against the product row locked FOR UPDATE and applies the
// returned writes in the same transaction: ledger entry first, then the
// product columns. Concurrent mutators of one product serialize here, so the
// entry's previousQuantity always matches the row it was computed from.
func (r *productRepo) Mutate(slug string, fn MutateFunc) (*model.Product, error) {
	var product model.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "slug = ?", slug).Error; err != nil {
			return err
		}

		mutation, err := fn(&product)
		if err != nil {
			return err
		}
		if mutation == nil {
			return nil
		}

		if mutation.History != nil {
			mutation.History.ProductID = product.ID
			if err := tx.Create(mutation.History).Error; err != nil {
				return err
			}
		}

		if len(mutation.Fields) > 0 {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", product.ID).
				Updates(mutation.Fields).Error; err != nil {
				return err
			}
			// Reload so callers see the applied state
			if err := tx.First(&product, "id = ?", product.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SoftDelete marks the product destroyed. Deleting an already-deleted slug
// matches zero rows and is a no-op, so the operation is idempotent.
func (r *productRepo) SoftDelete(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&model.Product{}).Error
}
