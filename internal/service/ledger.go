package service

import (
	"go-stockledger/internal/model"

	"github.com/google/uuid"
)

// The stock ledger engine. Pure arithmetic: each function maps a requested
// quantity change onto the new on-hand quantity and the movement to record.
// Whether the resulting entry is actually persisted (author attribution,
// no-op detection) is decided by the product service.

// Fixed notes for the two implicit entry points. Explicit adjustments carry
// the caller's note instead.
const (
	noteInitialStock = "Initial stock"
	noteStockUpdate  = "Stock update"
)

// StockChange is the outcome of one ledger computation.
type StockChange struct {
	Action           model.StockAction
	Quantity         int // recorded magnitude of the movement
	PreviousQuantity int
	NewQuantity      int
	Note             string
}

// Entry materializes the change as an immutable history record attributed
// to the given author. ProductID is filled in by the repository once the
// product row is known.
func (c *StockChange) Entry(authorID *uuid.UUID) *model.StockHistory {
	return &model.StockHistory{
		Action:           c.Action,
		Quantity:         c.Quantity,
		PreviousQuantity: c.PreviousQuantity,
		NewQuantity:      c.NewQuantity,
		Note:             c.Note,
		AuthorID:         authorID,
	}
}

// InitialStock classifies stock present at product creation. Nothing is
// recorded for an empty shelf.
func InitialStock(requested int) *StockChange {
	if requested <= 0 {
		return nil
	}
	return &StockChange{
		Action:           model.StockIn,
		Quantity:         requested,
		PreviousQuantity: 0,
		NewQuantity:      requested,
		Note:             noteInitialStock,
	}
}

// QuantityUpdate classifies a full replacement quantity submitted through a
// generic edit. Equal quantities are a ledger no-op. The movement is always
// IN or OUT by the sign of the delta, never ADJUSTMENT.
func QuantityUpdate(oldQuantity, newQuantity int) *StockChange {
	if newQuantity == oldQuantity {
		return nil
	}

	delta := newQuantity - oldQuantity
	action := model.StockIn
	if delta < 0 {
		action = model.StockOut
		delta = -delta
	}

	return &StockChange{
		Action:           action,
		Quantity:         delta,
		PreviousQuantity: oldQuantity,
		NewQuantity:      newQuantity,
		Note:             noteStockUpdate,
	}
}

// Adjust applies an explicit directional movement:
//
//   - IN adds amount to the current quantity.
//   - OUT subtracts amount, clamped at zero. The recorded quantity stays the
//     requested amount, not the clamped delta: the ledger preserves the
//     requester's stated intent even when physically clamped.
//   - ADJUSTMENT sets the quantity to amount absolutely, and likewise records
//     amount verbatim rather than |new - previous|.
func Adjust(oldQuantity int, action model.StockAction, amount int, note string) StockChange {
	newQuantity := oldQuantity
	switch action {
	case model.StockIn:
		newQuantity = oldQuantity + amount
	case model.StockOut:
		newQuantity = oldQuantity - amount
		if newQuantity < 0 {
			newQuantity = 0
		}
	case model.StockAdjustment:
		newQuantity = amount
	}

	return StockChange{
		Action:           action,
		Quantity:         amount,
		PreviousQuantity: oldQuantity,
		NewQuantity:      newQuantity,
		Note:             note,
	}
}
