// Package users serves the user-record CRUD API.
package users

import (
	"encoding/json"
	"net/http"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// Handler holds dependencies for the user endpoints.
type Handler struct {
	Store userstore.Repository
	Rnd   *apperr.Renderer
	Log   *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(store userstore.Repository, rnd *apperr.Renderer, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Rnd: rnd, Log: logger}
}

// decodeJSON parses a request body, reporting a validation error on
// malformed input.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(err, apperr.Validation, "Invalid JSON body")
	}
	return nil
}
