package stock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Service derives the dashboard stock snapshot.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
	Invalidate(ctx context.Context) error
}

type repository interface {
	EntryTotals(ctx context.Context) ([]ProductTotal, error)
	ExitTotals(ctx context.Context) ([]ProductTotal, error)
}

type statsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	StatsCacheKey() string
}

type service struct {
	repo  repository
	cache statsCache
	ttl   time.Duration
	logg  *logger.Logger
	now   func() time.Time
}

// ServiceParams bundles the dependencies required to build a stock service.
type ServiceParams struct {
	Repo   repository
	Cache  statsCache
	Config config.ChangeFeedConfig
	Logger *logger.Logger
}

// NewService wires the stock service. Cache is optional: without it every
// request recomputes from the ledgers.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("stock repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	ttl := params.Config.StatsCacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &service{
		repo:  params.Repo,
		cache: params.Cache,
		ttl:   ttl,
		logg:  params.Logger,
		now:   time.Now,
	}, nil
}

// Stats returns the stock snapshot, served from Redis when a fresh copy
// exists. Cache failures degrade to a recompute, never to an error.
func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, stats)
	return stats, nil
}

// Invalidate drops the cached snapshot so the next read recomputes.
func (s *service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, s.cache.StatsCacheKey())
}

func (s *service) compute(ctx context.Context) (*StatsDTO, error) {
	entryTotals, err := s.repo.EntryTotals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum fuel entries")
	}
	exitTotals, err := s.repo.ExitTotals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum fuel exits")
	}

	dieselIn, agricolaIn, err := bucketTotals(entryTotals)
	if err != nil {
		return nil, err
	}
	dieselOut, agricolaOut, err := bucketTotals(exitTotals)
	if err != nil {
		return nil, err
	}

	return &StatsDTO{
		Diesel:       buildProductStats(dieselIn, dieselOut),
		Agricola:     buildProductStats(agricolaIn, agricolaOut),
		TotalEntries: dieselIn.Add(agricolaIn),
		TotalExits:   dieselOut.Add(agricolaOut),
		GeneratedAt:  s.now().UTC(),
	}, nil
}

// bucketTotals assigns each product sum to its bucket. The match is
// exhaustive over the product enum: a row carrying any other value means
// the ledgers hold data the dashboard cannot account for, which is a
// state conflict, not something to silently fold into a bucket.
func bucketTotals(totals []ProductTotal) (diesel, agricola decimal.Decimal, err error) {
	diesel = decimal.Zero
	agricola = decimal.Zero
	for _, total := range totals {
		switch enums.Product(total.Product) {
		case enums.ProductDiesel:
			diesel = diesel.Add(total.Total)
		case enums.ProductAgricola:
			agricola = agricola.Add(total.Total)
		default:
			return decimal.Zero, decimal.Zero, pkgerrors.New(
				pkgerrors.CodeStateConflict,
				fmt.Sprintf("unknown product %q in movement ledger", total.Product),
			)
		}
	}
	return diesel, agricola, nil
}

func (s *service) fromCache(ctx context.Context) *StatsDTO {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.StatsCacheKey())
	if err != nil {
		if !errors.Is(err, redislib.Nil) {
			s.logg.Error(ctx, "read stats cache", err)
		}
		return nil
	}
	var stats StatsDTO
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		s.logg.Error(ctx, "decode stats cache", err)
		return nil
	}
	return &stats
}

func (s *service) store(ctx context.Context, stats *StatsDTO) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		s.logg.Error(ctx, "encode stats cache", err)
		return
	}
	if err := s.cache.Set(ctx, s.cache.StatsCacheKey(), string(raw), s.ttl); err != nil {
		s.logg.Error(ctx, "write stats cache", err)
	}
}
