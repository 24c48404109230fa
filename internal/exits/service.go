package exits

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
)

// Service defines fuel exit operations available to the HTTP layer.
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateExitRequest) (*ExitDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*ListResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, exit *models.FuelExit) error
	List(ctx context.Context, params pagination.Params, filters Filters) ([]models.FuelExit, int64, error)
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

// NewService wires the exits service.
func NewService(repo repository, publisher changePublisher) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("exits repository is required")
	}
	if publisher == nil {
		return nil, fmt.Errorf("change publisher is required")
	}
	return &service{repo: repo, publisher: publisher, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, actor Actor, req CreateExitRequest) (*ExitDTO, error) {
	if actor.ID == uuid.Nil || strings.TrimSpace(actor.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "actor identity is required")
	}

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

	refuelType, err := enums.ParseRefuelType(req.RefuelType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid refuel type")
	}

	volume, err := decimal.NewFromString(strings.TrimSpace(req.Volume))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid volume")
	}
	if !volume.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "volume must be greater than zero")
	}

	plate, err := normalizePlate(refuelType, req.Plate)
	if err != nil {
		return nil, err
	}

	exit := &models.FuelExit{
		ID:         uuid.New(),
		StaffID:    actor.ID,
		StaffName:  strings.TrimSpace(actor.Name),
		Date:       date,
		Product:    product,
		Volume:     volume,
		RefuelType: refuelType,
		Plate:      plate,
	}
	if err := s.repo.Create(ctx, exit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create fuel exit")
	}

	s.publisher.Publish(ctx, events.ChangeEvent{Table: events.TableFuelExits, Action: events.ActionInsert})
	return FromModel(exit), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*ListResult, error) {
	rows, total, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list fuel exits")
	}
	out := make([]ExitDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return &ListResult{Exits: out, Total: total}, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete fuel exit")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "fuel exit not found")
	}

	s.publisher.Publish(ctx, events.ChangeEvent{Table: events.TableFuelExits, Action: events.ActionDelete})
	return nil
}

// normalizePlate enforces the vehicle rule: a vehicle refuel requires a
// plate, any other refuel type stores none.
func normalizePlate(refuelType enums.RefuelType, raw *string) (*string, error) {
	if !refuelType.RequiresPlate() {
		return nil, nil
	}
	if raw == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plate is required for vehicle refuels")
	}
	plate := strings.ToUpper(strings.TrimSpace(*raw))
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plate is required for vehicle refuels")
	}
	return &plate, nil
}

// ParseFilters builds listing filters from raw query values. Empty strings
// and the literal "all" match everything, mirroring the dashboard selects.
func ParseFilters(staffID, product, refuelType string) (Filters, error) {
	var filters Filters

	if value := filterValue(staffID); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			return Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid staff_id filter")
		}
		filters.StaffID = &id
	}
	if value := filterValue(product); value != "" {
		parsed, err := enums.ParseProduct(value)
		if err != nil {
			return Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product filter")
		}
		filters.Product = &parsed
	}
	if value := filterValue(refuelType); value != "" {
		parsed, err := enums.ParseRefuelType(value)
		if err != nil {
			return Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid refuel_type filter")
		}
		filters.RefuelType = &parsed
	}
	return filters, nil
}

func filterValue(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}
