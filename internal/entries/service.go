package entries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aceitestapia/fueltrack-backend/internal/events"
	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/format"
	"github.com/aceitestapia/fueltrack-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service defines fuel entry operations available to the HTTP layer.
type Service interface {
	Create(ctx context.Context, actorID uuid.UUID, req CreateEntryRequest) (*EntryDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, entry *models.FuelEntry) error
	List(ctx context.Context, params pagination.Params) ([]models.FuelEntry, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type changePublisher interface {
	Publish(ctx context.Context, event events.ChangeEvent)
}

type service struct {
	repo      repository
	publisher changePublisher
	now       func() time.Time
}

// NewService wires the entries service.
func NewService(repo repository, publisher changePublisher) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("entries repository is required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("change publisher is required")
	}
	return &service{repo: repo, publisher: publisher, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, req CreateEntryRequest) (*EntryDTO, error) {
	date, err := format.ParseDate(req.Date)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date")
	}
	if format.IsFutureDate(date, s.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date cannot be in the future")
	}

	product, err := enums.ParseProduct(req.Product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product")
	}

	volume, err := parsePositiveDecimal(req.Volume, "volume")
	if err != nil {
		return nil, err
	}
	price, err := parsePositiveDecimal(req.PricePerLiter, "price_per_liter")
	if err != nil {
		return nil, err
	}

	supplier := strings.TrimSpace(req.Supplier)
	if supplier == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier is required")
	}

	entry := &models.FuelEntry{
		ID:            uuid.New(),
		Date:          date,
		Product:       product,
		Volume:        volume,
		Supplier:      supplier,
		PricePerLiter: price,
		CreatedBy:     actorID,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create fuel entry")
	}

	s.publisher.Publish(ctx, events.ChangeEvent{Table: events.TableFuelEntries, Action: events.ActionInsert})
	return FromModel(entry), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list fuel entries")
	}
	out := make([]EntryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return &ListResult{Entries: out, Total: total}, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "fuel entry not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete fuel entry")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "fuel entry not found")
	}

	s.publisher.Publish(ctx, events.ChangeEvent{Table: events.TableFuelEntries, Action: events.ActionDelete})
	return nil
}

func parsePositiveDecimal(raw, field string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid %s", field))
	}
	if !value.IsPositive() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be greater than zero", field))
	}
	return value, nil
}
