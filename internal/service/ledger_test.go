package service_test

import (
	"testing"

	"go-stockledger/internal/model"
	"go-stockledger/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestInitialStock(t *testing.T) {
	t.Run("positive quantity produces an IN movement from zero", func(t *testing.T) {
		change := service.InitialStock(5)

		assert.NotNil(t, change)
		assert.Equal(t, model.StockIn, change.Action)
		assert.Equal(t, 5, change.Quantity)
		assert.Equal(t, 0, change.PreviousQuantity)
		assert.Equal(t, 5, change.NewQuantity)
		assert.Equal(t, "Initial stock", change.Note)
	})

	t.Run("zero quantity is nothing to record", func(t *testing.T) {
		assert.Nil(t, service.InitialStock(0))
	})
}

func TestQuantityUpdate(t *testing.T) {
	t.Run("equal quantities are a ledger no-op", func(t *testing.T) {
		assert.Nil(t, service.QuantityUpdate(10, 10))
	})

	t.Run("decrease classifies as OUT with the absolute delta", func(t *testing.T) {
		change := service.QuantityUpdate(10, 3)

		assert.NotNil(t, change)
		assert.Equal(t, model.StockOut, change.Action)
		assert.Equal(t, 7, change.Quantity)
		assert.Equal(t, 10, change.PreviousQuantity)
		assert.Equal(t, 3, change.NewQuantity)
		assert.Equal(t, "Stock update", change.Note)
	})

	t.Run("increase classifies as IN", func(t *testing.T) {
		change := service.QuantityUpdate(3, 10)

		assert.NotNil(t, change)
		assert.Equal(t, model.StockIn, change.Action)
		assert.Equal(t, 7, change.Quantity)
		assert.Equal(t, 3, change.PreviousQuantity)
		assert.Equal(t, 10, change.NewQuantity)
	})
}

func TestAdjust(t *testing.T) {
	t.Run("IN adds the amount", func(t *testing.T) {
		change := service.Adjust(10, model.StockIn, 5, "restock")

		assert.Equal(t, model.StockIn, change.Action)
		assert.Equal(t, 15, change.NewQuantity)
		assert.Equal(t, 10, change.PreviousQuantity)
		assert.Equal(t, 5, change.Quantity)
		assert.Equal(t, "restock", change.Note)
	})

	t.Run("OUT subtracts the amount", func(t *testing.T) {
		change := service.Adjust(10, model.StockOut, 4, "")

		assert.Equal(t, 6, change.NewQuantity)
		assert.Equal(t, 4, change.Quantity)
	})

	t.Run("OUT clamps at zero but records the requested amount", func(t *testing.T) {
		change := service.Adjust(10, model.StockOut, 50, "")

		assert.Equal(t, 0, change.NewQuantity)
		// The ledger keeps the requester's stated intent, not the clamped delta
		assert.Equal(t, 50, change.Quantity)
		assert.Equal(t, 10, change.PreviousQuantity)
	})

	t.Run("ADJUSTMENT sets the quantity absolutely", func(t *testing.T) {
		change := service.Adjust(123, model.StockAdjustment, 7, "recount")

		assert.Equal(t, model.StockAdjustment, change.Action)
		assert.Equal(t, 7, change.NewQuantity)
		assert.Equal(t, 123, change.PreviousQuantity)
		// The recorded quantity is the raw amount, not |new - previous|
		assert.Equal(t, 7, change.Quantity)
	})
}

func TestStockChangeEntry(t *testing.T) {
	change := service.Adjust(2, model.StockIn, 3, "note")
	entry := change.Entry(nil)

	assert.Equal(t, model.StockIn, entry.Action)
	assert.Equal(t, 3, entry.Quantity)
	assert.Equal(t, 2, entry.PreviousQuantity)
	assert.Equal(t, 5, entry.NewQuantity)
	assert.Equal(t, "note", entry.Note)
	assert.Nil(t, entry.AuthorID)
}
