package controllers

import (
	"net/http"

	"github.com/rentora/rentora-backend/api/middleware"
	"github.com/rentora/rentora-backend/api/responses"
	"github.com/rentora/rentora-backend/api/validators"
	"github.com/rentora/rentora-backend/internal/publications"
	"github.com/rentora/rentora-backend/pkg/logger"
)

// PublicationsList serves active listings; the projection depends on whether
// the caller presented a token.
func PublicationsList(svc publications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context(), middleware.VisibilityFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// PublicationsCreate composes a listing from existing records, admin only.
func PublicationsCreate(svc publications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body publications.CreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// PublicationsDeactivate retires the listing.
func PublicationsDeactivate(svc publications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body publications.DeactivateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Deactivate(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
