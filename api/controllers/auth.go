package controllers

import (
	"net/http"

	"github.com/rentora/rentora-backend/api/responses"
	"github.com/rentora/rentora-backend/internal/auth"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/logger"
)

// AuthLogin wires the login endpoint into the HTTP layer. Credentials arrive
// as HTTP Basic auth, the legacy client contract.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			err := pkgerrors.New(pkgerrors.CodeUnauthorized, "basic credentials required")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), auth.LoginRequest{
			Username: username,
			Password: password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
