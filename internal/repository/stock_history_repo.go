package repository

import (
	"time"

	"go-stockledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementData is one day of aggregated ledger activity for charts.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats is the overview block on the dashboard.
type DashboardStats struct {
	TotalProducts       int64 `json:"total_products"`
	TotalCategories     int64 `json:"total_categories"`
	LowStockProducts    int64 `json:"low_stock_products"`
	OutOfStockProducts  int64 `json:"out_of_stock_products"`
	TotalInventoryValue int64 `json:"total_inventory_value"`
}

// StockHistoryRepository is read-only apart from the inserts issued inside
// product mutations: ledger entries are never updated or deleted.
type StockHistoryRepository interface {
	FindByProduct(productID uuid.UUID) ([]model.StockHistory, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

type stockHistoryRepo struct {
	db *gorm.DB
}

func NewStockHistoryRepo(db *gorm.DB) StockHistoryRepository {
	return &stockHistoryRepo{db}
}

func (r *stockHistoryRepo) FindByProduct(productID uuid.UUID) ([]model.StockHistory, error) {
	var entries []model.StockHistory
	err := r.db.Preload("Author").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *stockHistoryRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	rows, err := r.db.Model(&model.StockHistory{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN action = 'IN' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN action = 'OUT' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *stockHistoryRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}

	// Low stock: at or below the reorder threshold but not yet empty
	if err := r.db.Model(&model.Product{}).
		Where("quantity > 0 AND quantity <= min_quantity").
		Count(&stats.LowStockProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity = 0").
		Count(&stats.OutOfStockProducts).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&stats.TotalInventoryValue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
