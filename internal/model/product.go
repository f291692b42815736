package model

import "github.com/google/uuid"

type ProductStatus string

const (
	ProductActive     ProductStatus = "ACTIVE"
	ProductInactive   ProductStatus = "INACTIVE"
	ProductOutOfStock ProductStatus = "OUT_OF_STOCK"
)

type Product struct {
	BaseModel
	Slug        string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	SKU         string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string        `gorm:"type:text" json:"description"`
	Price       int64         `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Cost        int64         `gorm:"not null;default:0" json:"cost" validate:"gte=0"`
	Quantity    int           `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	MinQuantity int           `gorm:"not null;default:5" json:"min_quantity" validate:"gte=0"` // reorder threshold
	Status      ProductStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
	Image       string        `gorm:"type:varchar(512)" json:"image"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	// The agent responsible for this product's stock movements. Optional:
	// products without an author still track quantity, but their field
	// updates are not auditable (no actor to attribute the entry to).
	AuthorID *uuid.UUID `gorm:"type:uuid" json:"author_id,omitempty"`
	Author   *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty" validate:"-"`
}

// UpdateProductRequest carries a partial product edit. Nil fields keep
// their stored values. Slug is the lookup key and is immutable.
type UpdateProductRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	SKU         *string        `json:"sku,omitempty"`
	Price       *int64         `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost        *int64         `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Quantity    *int           `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MinQuantity *int           `json:"min_quantity,omitempty" validate:"omitempty,gte=0"`
	Status      *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
	Image       *string        `json:"image,omitempty"`
	CategoryID  *uuid.UUID     `json:"category_id,omitempty"`
	Path        string         `json:"path,omitempty"` // view path to revalidate, optional
}

// AdjustStockRequest is an explicit directional stock movement. Amount is
// interpreted by the action: IN adds, OUT subtracts (clamped at zero),
// ADJUSTMENT sets the quantity absolutely.
type AdjustStockRequest struct {
	Action StockAction `json:"action" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Amount int         `json:"amount" validate:"required,gt=0"`
	Note   string      `json:"note"`
}
