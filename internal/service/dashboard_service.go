package service

import (
	"time"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetRecentProducts() ([]model.Product, error)
	GetLowStockProducts() ([]model.Product, error)
}

type dashboardService struct {
	historyRepo repository.StockHistoryRepository
	productRepo repository.ProductRepository
}

func NewDashboardService(hRepo repository.StockHistoryRepository, pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{historyRepo: hRepo, productRepo: pRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.historyRepo.GetDashboardStats()
	if err != nil {
		return nil, storeErr(err)
	}
	return stats, nil
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	data, err := s.historyRepo.GetStockMovement(startDate, endDate)
	if err != nil {
		return nil, storeErr(err)
	}
	return data, nil
}

func (s *dashboardService) GetRecentProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindRecent(5)
	if err != nil {
		return nil, storeErr(err)
	}
	return products, nil
}

func (s *dashboardService) GetLowStockProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindLowStock(10)
	if err != nil {
		return nil, storeErr(err)
	}
	return products, nil
}
