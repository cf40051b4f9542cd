// Package members serves account signup, login, password recovery, and the
// member profile endpoints.
package members

import (
	"encoding/json"
	"net/http"
	"time"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/mailer"
	"github.com/dalemusser/rosterhub/internal/app/system/token"
	"go.uber.org/zap"
)

// Handler holds dependencies for the member endpoints.
type Handler struct {
	Members     memberstore.Repository
	Tokens      *token.Manager
	Mail        mailer.Sender
	Rnd         *apperr.Renderer
	Log         *zap.Logger
	BaseURL     string
	ResetExpiry time.Duration
}

// NewHandler constructs a members Handler.
func NewHandler(
	members memberstore.Repository,
	tokens *token.Manager,
	mail mailer.Sender,
	rnd *apperr.Renderer,
	logger *zap.Logger,
	baseURL string,
	resetExpiry time.Duration,
) *Handler {
	return &Handler{
		Members:     members,
		Tokens:      tokens,
		Mail:        mail,
		Rnd:         rnd,
		Log:         logger,
		BaseURL:     baseURL,
		ResetExpiry: resetExpiry,
	}
}

// decodeJSON parses a request body, reporting a validation error on
// malformed input.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(err, apperr.Validation, "Invalid JSON body")
	}
	return nil
}
