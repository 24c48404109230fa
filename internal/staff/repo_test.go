package staff

import (
	"context"
	"testing"
	"time"

	"github.com/aceitestapia/fueltrack-backend/internal/exits"
	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/aceitestapia/fueltrack-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStaffTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS staff (
  id TEXT PRIMARY KEY,
  phone TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  role TEXT NOT NULL,
  plates TEXT NOT NULL DEFAULT '{}',
  is_active INTEGER NOT NULL DEFAULT 1,
  password_hash TEXT,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func newMember(t *testing.T, db *gorm.DB, phone, name string, role enums.StaffRole) *models.StaffMember {
	t.Helper()

	member := &models.StaffMember{
		ID:       uuid.New(),
		Phone:    phone,
		Name:     name,
		Role:     role,
		Plates:   pq.StringArray{},
		IsActive: true,
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func TestRepositoryFindActiveByPhone(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	member := newMember(t, db, "683613331", "Pedro García", enums.StaffRoleOperario)

	found, err := repo.FindActiveByPhone(context.Background(), "683613331")
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)
	assert.Equal(t, "Pedro García", found.Name)

	_, err = repo.FindActiveByPhone(context.Background(), "000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryFindActiveByPhone_skipsDeactivated(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	member := newMember(t, db, "612345678", "Luis Martín", enums.StaffRoleOperario)

	found, err := repo.Deactivate(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = repo.FindActiveByPhone(context.Background(), "612345678")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListActive(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	first := newMember(t, db, "611111111", "Primero", enums.StaffRoleAdmin)
	second := newMember(t, db, "622222222", "Segundo", enums.StaffRoleOperario)
	gone := newMember(t, db, "633333333", "Baja", enums.StaffRoleOperario)

	_, err := repo.Deactivate(context.Background(), gone.ID)
	require.NoError(t, err)

	members, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, first.ID, members[0].ID)
	assert.Equal(t, second.ID, members[1].ID)
}

func TestRepositoryDeactivateTwice(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	member := newMember(t, db, "644444444", "Una Vez", enums.StaffRoleOperario)

	found, err := repo.Deactivate(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Deactivate(context.Background(), member.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepositoryLinkCredential(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	member := newMember(t, db, "655555555", "Sin Vincular", enums.StaffRoleOperario)
	assert.False(t, member.IsLinked())

	require.NoError(t, repo.LinkCredential(context.Background(), member.ID, "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"))

	reloaded, err := repo.FindByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsLinked())
}

func TestRepositoryUpdatePlates(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

	member := newMember(t, db, "666666666", "Con Flota", enums.StaffRoleOperario)

	updated, err := repo.Update(context.Background(), member.ID, map[string]any{
		"plates": pq.StringArray{"1234 ABC", "5678 DEF"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Plates, 2)
	assert.Equal(t, "1234 ABC", updated.Plates[0])
}

func TestRepositoryDeactivatePreservesExitHistory(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := NewRepository(db)

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

	member := newMember(t, db, "677777777", "Marta Egaña", enums.StaffRoleOperario)

	exitsRepo := exits.NewRepository(db)
	exit := &models.FuelExit{
		ID:         uuid.New(),
		StaffID:    member.ID,
		StaffName:  member.Name,
		Date:       time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC),
		Product:    enums.ProductDiesel,
		Volume:     decimal.RequireFromString("60"),
		RefuelType: enums.RefuelTypeGarrafa,
	}
	require.NoError(t, exitsRepo.Create(context.Background(), exit))

	found, err := repo.Deactivate(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, found)

	members, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)

	rows, total, err := exitsRepo.List(context.Background(), pagination.Params{}, exits.Filters{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, exit.ID, rows[0].ID)
	assert.Equal(t, member.ID, rows[0].StaffID)
	assert.Equal(t, "Marta Egaña", rows[0].StaffName)
	assert.True(t, decimal.RequireFromString("60").Equal(rows[0].Volume))
}
