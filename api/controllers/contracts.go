package controllers

import (
	"net/http"

	"github.com/rentora/rentora-backend/api/responses"
	"github.com/rentora/rentora-backend/api/validators"
	"github.com/rentora/rentora-backend/internal/contracts"
	"github.com/rentora/rentora-backend/pkg/logger"
)

// ContractsList serves all contracts.
func ContractsList(svc contracts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ContractsCreate records a rental agreement, admin only.
func ContractsCreate(svc contracts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body contracts.CreateRequest
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
