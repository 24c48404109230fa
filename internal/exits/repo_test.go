package exits

import (
	"context"
	"testing"
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/aceitestapia/fueltrack-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExitsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
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
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newExit(t *testing.T, db *gorm.DB, staffID uuid.UUID, date time.Time, product enums.Product, refuelType enums.RefuelType) *models.FuelExit {
	t.Helper()

	var plate *string
	if refuelType.RequiresPlate() {
		value := "1234 ABC"
		plate = &value
	}
	exit := &models.FuelExit{
		ID:         uuid.New(),
		StaffID:    staffID,
		StaffName:  "Pedro García",
		Date:       date,
		Product:    product,
		Volume:     decimal.RequireFromString("50"),
		RefuelType: refuelType,
		Plate:      plate,
		CreatedAt:  date,
	}
	require.NoError(t, db.Create(exit).Error)
	return exit
}

func TestRepositoryListFilters(t *testing.T) {
	db := setupExitsTestDB(t)
	repo := NewRepository(db)

	pedro := uuid.New()
	ana := uuid.New()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	newExit(t, db, pedro, base, enums.ProductDiesel, enums.RefuelTypeVehiculo)
	newExit(t, db, pedro, base.Add(time.Hour), enums.ProductAgricola, enums.RefuelTypeDeposito)
	newExit(t, db, ana, base.Add(2*time.Hour), enums.ProductDiesel, enums.RefuelTypeGarrafa)

	rows, total, err := repo.List(context.Background(), pagination.Params{}, Filters{StaffID: &pedro})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	product := enums.ProductDiesel
	rows, total, err = repo.List(context.Background(), pagination.Params{}, Filters{StaffID: &pedro, Product: &product})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, enums.RefuelTypeVehiculo, rows[0].RefuelType)

	refuelType := enums.RefuelTypeGarrafa
	rows, total, err = repo.List(context.Background(), pagination.Params{}, Filters{RefuelType: &refuelType})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ana, rows[0].StaffID)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db := setupExitsTestDB(t)
	repo := NewRepository(db)

	staffID := uuid.New()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := newExit(t, db, staffID, base, enums.ProductDiesel, enums.RefuelTypeDeposito)
	newer := newExit(t, db, staffID, base.Add(24*time.Hour), enums.ProductDiesel, enums.RefuelTypeDeposito)

	rows, _, err := repo.List(context.Background(), pagination.Params{}, Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupExitsTestDB(t)
	repo := NewRepository(db)

	exit := newExit(t, db, uuid.New(), time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), enums.ProductDiesel, enums.RefuelTypeVehiculo)

	found, err := repo.Delete(context.Background(), exit.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(context.Background(), exit.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
