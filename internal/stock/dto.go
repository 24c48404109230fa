package stock

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/format"
	"github.com/shopspring/decimal"
)

// ProductStats aggregates one product's movements.
type ProductStats struct {
	Entries    decimal.Decimal `json:"entries"`
	Exits      decimal.Decimal `json:"exits"`
	Stock      decimal.Decimal `json:"stock"`
	StockLabel string          `json:"stock_label"`
}

// StatsDTO is the dashboard snapshot: current stock per product derived
// entirely from the movement ledgers.
type StatsDTO struct {
	Diesel       ProductStats    `json:"diesel"`
	Agricola     ProductStats    `json:"agricola"`
	TotalEntries decimal.Decimal `json:"total_entries"`
	TotalExits   decimal.Decimal `json:"total_exits"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

func buildProductStats(entries, exits decimal.Decimal) ProductStats {
	stock := entries.Sub(exits)
	return ProductStats{
		Entries:    entries,
		Exits:      exits,
		Stock:      stock,
		StockLabel: format.FormatVolume(stock),
	}
}
