package controllers

import (
	"net/http"

	"github.com/aceitestapia/fueltrack-backend/api/middleware"
	"github.com/aceitestapia/fueltrack-backend/api/responses"
	"github.com/aceitestapia/fueltrack-backend/api/validators"
	"github.com/aceitestapia/fueltrack-backend/internal/entries"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	"github.com/aceitestapia/fueltrack-backend/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// EntryList returns a page of fuel deliveries, newest first.
func EntryList(svc entries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entries service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.ListEnvelope[entries.EntryDTO]{
			Items: result.Entries,
			Total: result.Total,
		})
	}
}

// EntryCreate registers a fuel delivery.
func EntryCreate(svc entries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entries service unavailable"))
			return
		}

		actorID, err := uuid.Parse(middleware.StaffIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing staff identity"))
			return
		}

		var body entries.CreateEntryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Create(r.Context(), actorID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}

// EntryDelete removes a delivery row.
func EntryDelete(svc entries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "entries service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "entryId"), "entryId")
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
