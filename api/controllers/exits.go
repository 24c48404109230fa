package controllers

import (
	"net/http"

	"github.com/aceitestapia/fueltrack-backend/api/middleware"
	"github.com/aceitestapia/fueltrack-backend/api/responses"
	"github.com/aceitestapia/fueltrack-backend/api/validators"
	"github.com/aceitestapia/fueltrack-backend/internal/auth"
	"github.com/aceitestapia/fueltrack-backend/internal/exits"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	"github.com/aceitestapia/fueltrack-backend/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ExitList returns a filtered page of fuel dispenses, newest first.
func ExitList(svc exits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "exits service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		filters, err := exits.ParseFilters(query.Get("staff_id"), query.Get("product"), query.Get("refuel_type"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.ListEnvelope[exits.ExitDTO]{
			Items: result.Exits,
			Total: result.Total,
		})
	}
}

// ExitCreate logs a dispense for the authenticated member. The member's
// current profile supplies the name snapshot stored on the row.
func ExitCreate(svc exits.Service, authSvc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || authSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "exits service unavailable"))
			return
		}

		staffID, err := uuid.Parse(middleware.StaffIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing staff identity"))
			return
		}

		session, err := authSvc.CurrentSession(r.Context(), staffID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body exits.CreateExitRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := exits.Actor{ID: session.Profile.ID, Name: session.Profile.Name}
		exit, err := svc.Create(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, exit)
	}
}

// ExitDelete removes a dispense row.
func ExitDelete(svc exits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "exits service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "exitId"), "exitId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
