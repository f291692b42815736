package model

import "github.com/google/uuid"

type StockAction string

const (
	StockIn         StockAction = "IN"
	StockOut        StockAction = "OUT"
	StockAdjustment StockAction = "ADJUSTMENT"
)

// StockHistory is one immutable ledger entry: exactly one row is written per
// accepted quantity-changing mutation, and rows are never updated or deleted.
// Entries outlive soft-deleted products.
type StockHistory struct {
	BaseModel
	ProductID uuid.UUID   `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Action    StockAction `gorm:"type:varchar(20);not null" json:"action"`

	// Quantity is the recorded magnitude of the movement. For OUT this is
	// the requested amount even when the subtraction clamped at zero, and
	// for ADJUSTMENT it is the requested absolute quantity verbatim, so it
	// does not always equal |new - previous|.
	Quantity         int `gorm:"not null" json:"quantity"`
	PreviousQuantity int `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int `gorm:"not null" json:"new_quantity"`

	Note     string     `gorm:"type:text" json:"note"`
	AuthorID *uuid.UUID `gorm:"type:uuid" json:"author_id,omitempty"`
	Author   *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
