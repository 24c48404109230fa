package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aceitestapia/fueltrack-backend/api/controllers"
	"github.com/aceitestapia/fueltrack-backend/api/middleware"
	"github.com/aceitestapia/fueltrack-backend/internal/auth"
	"github.com/aceitestapia/fueltrack-backend/internal/entries"
	"github.com/aceitestapia/fueltrack-backend/internal/events"
	"github.com/aceitestapia/fueltrack-backend/internal/exits"
	"github.com/aceitestapia/fueltrack-backend/internal/staff"
	"github.com/aceitestapia/fueltrack-backend/internal/stock"
	"github.com/aceitestapia/fueltrack-backend/pkg/auth/session"
	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/db"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	"github.com/aceitestapia/fueltrack-backend/pkg/metrics"
	"github.com/aceitestapia/fueltrack-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Revoke(context.Context, string) error
}

type changeFeedHub interface {
	Subscribe() (<-chan events.Signal, func())
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionManager sessionManager
	AuthService    auth.Service
	StaffService   staff.Service
	EntriesService entries.Service
	ExitsService   exits.Service
	StockService   stock.Service
	Hub            changeFeedHub
	HTTPMetrics    *metrics.HTTPMetrics
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginPhoneLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))

		r.Get("/auth/session", controllers.AuthSession(deps.AuthService, logg))
		r.Post("/auth/logout", controllers.AuthLogout(deps.AuthService, logg))

		r.With(middleware.RequireRole(string(enums.StaffRoleAdmin), logg)).
			Get("/stats", controllers.Stats(deps.StockService, logg))
		r.Get("/events", controllers.ChangeFeed(deps.Hub, logg))

		r.Route("/exits", func(r chi.Router) {
			r.Get("/", controllers.ExitList(deps.ExitsService, logg))
			r.Post("/", controllers.ExitCreate(deps.ExitsService, deps.AuthService, logg))
			r.With(middleware.RequireRole(string(enums.StaffRoleAdmin), logg)).
				Delete("/{exitId}", controllers.ExitDelete(deps.ExitsService, logg))
		})

		r.Route("/entries", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.StaffRoleAdmin), logg))
			r.Get("/", controllers.EntryList(deps.EntriesService, logg))
			r.Post("/", controllers.EntryCreate(deps.EntriesService, logg))
			r.Delete("/{entryId}", controllers.EntryDelete(deps.EntriesService, logg))
		})

		r.Route("/staff", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.StaffRoleAdmin), logg))
			r.Get("/", controllers.StaffList(deps.StaffService, logg))
			r.Post("/", controllers.StaffCreate(deps.StaffService, logg))
			r.Patch("/{staffId}", controllers.StaffUpdate(deps.StaffService, logg))
			r.Delete("/{staffId}", controllers.StaffDeactivate(deps.StaffService, logg))
		})
	})

	return r
}
