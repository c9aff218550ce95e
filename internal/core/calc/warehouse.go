package calc

import (
	"strings"

	"github.com/SscSPs/business_management_app/internal/core/domain"
)

const (
	topProductsByStock = 10
	uncategorized      = "Sin categoría"
)

// BuildWarehouseStats summarizes the product catalogue. Products without a
// configured minimum use lowStockDefault.
func BuildWarehouseStats(products []domain.Product, lowStockDefault int) domain.WarehouseStats {
	stats := domain.WarehouseStats{
		TotalProducts: len(products),
		Distribution:  make([]domain.CategoryCount, 0),
	}

	index := make(map[string]int)
	for _, p := range products {
		if p.IsLowStock(lowStockDefault) {
			stats.LowStockCount++
		}
		name := strings.TrimSpace(p.Category)
		if name == "" {
			name = uncategorized
		}
		if i, ok := index[name]; ok {
			stats.Distribution[i].Value++
			continue
		}
		index[name] = len(stats.Distribution)
		stats.Distribution = append(stats.Distribution, domain.CategoryCount{Name: name, Value: 1})
	}

	stats.TopByStock = TopNInt(products, topProductsByStock, func(p domain.Product) int { return p.Stock })
	if stats.TopByStock == nil {
		stats.TopByStock = []domain.Product{}
	}
	return stats
}
