package stock

import (
	"context"
	"testing"
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStockTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	entries := `
CREATE TABLE IF NOT EXISTS fuel_entries (
  id TEXT PRIMARY KEY,
  date DATETIME NOT NULL,
  product TEXT NOT NULL,
  volume NUMERIC NOT NULL,
  supplier TEXT NOT NULL,
  price_per_liter NUMERIC NOT NULL,
  created_by TEXT NOT NULL,
  created_at DATETIME
);`
	exits := `
CREATE TABLE IF NOT EXISTS fuel_exits (
  id TEXT PRIMARY KEY,
  staff_id TEXT NOT NULL,
  staff_name TEXT NOT NULL,
  date DATETIME NOT NULL,
  product TEXT NOT NULL,
  volume NUMERIC NOT NULL,
  refuel_type TEXT NOT NULL,
  plate TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(entries).Error)
	require.NoError(t, db.Exec(exits).Error)
	return db
}

func seedEntry(t *testing.T, db *gorm.DB, product enums.Product, volume string) {
	t.Helper()

	entry := &models.FuelEntry{
		ID:            uuid.New(),
		Date:          time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Product:       product,
		Volume:        decimal.RequireFromString(volume),
		Supplier:      "Repsol",
		PricePerLiter: decimal.RequireFromString("1.459"),
		CreatedBy:     uuid.New(),
	}
	require.NoError(t, db.Create(entry).Error)
}

func seedExit(t *testing.T, db *gorm.DB, product enums.Product, volume string) {
	t.Helper()

	exit := &models.FuelExit{
		ID:         uuid.New(),
		StaffID:    uuid.New(),
		StaffName:  "Pedro García",
		Date:       time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		Product:    product,
		Volume:     decimal.RequireFromString(volume),
		RefuelType: enums.RefuelTypeDeposito,
	}
	require.NoError(t, db.Create(exit).Error)
}

func findTotal(totals []ProductTotal, product enums.Product) (decimal.Decimal, bool) {
	for _, total := range totals {
		if total.Product == string(product) {
			return total.Total, true
		}
	}
	return decimal.Zero, false
}

func TestRepositoryTotalsGroupByProduct(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewRepository(db)

	seedEntry(t, db, enums.ProductDiesel, "500")
	seedEntry(t, db, enums.ProductDiesel, "250.5")
	seedEntry(t, db, enums.ProductAgricola, "100")
	seedExit(t, db, enums.ProductDiesel, "120")

	entryTotals, err := repo.EntryTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, entryTotals, 2)

	diesel, ok := findTotal(entryTotals, enums.ProductDiesel)
	require.True(t, ok)
	assert.True(t, diesel.Equal(decimal.RequireFromString("750.5")))

	agricola, ok := findTotal(entryTotals, enums.ProductAgricola)
	require.True(t, ok)
	assert.True(t, agricola.Equal(decimal.RequireFromString("100")))

	exitTotals, err := repo.ExitTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, exitTotals, 1)
	dieselOut, ok := findTotal(exitTotals, enums.ProductDiesel)
	require.True(t, ok)
	assert.True(t, dieselOut.Equal(decimal.RequireFromString("120")))
}

func TestRepositoryTotalsEmptyTables(t *testing.T) {
	db := setupStockTestDB(t)
	repo := NewRepository(db)

	totals, err := repo.EntryTotals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, totals)
}
