package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the catalog. A missing or unreadable worksheet degrades to an
// empty catalog rather than an error.
func (s *Service) List(ctx context.Context) []Product {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("catalog read failed, serving empty", slog.Any("error", err))
		return []Product{}
	}
	return products
}

func (s *Service) Add(ctx context.Context, req AddProductRequest) (*Product, error) {
	p := Product{
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         float64(req.Stock),
	}
	if err := s.repo.Append(ctx, p); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	return &p, nil
}

// LowStock lists products with stock below the restock threshold.
func (s *Service) LowStock(ctx context.Context) []Product {
	low := make([]Product, 0)
	for _, p := range s.List(ctx) {
		if p.Stock < LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}
