// internal/app/features/users/create.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// create handles POST /api/users.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	var in userstore.NewUser
	if err := decodeJSON(r, &in); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Store.Create(ctx, in)
	if err != nil {
		return apperr.FromStore(err, "user")
	}

	h.Log.Info("user created", zap.String("user_id", u.ID.Hex()), zap.String("slug", u.Slug))
	respond.Success(w, http.StatusCreated, map[string]any{"user": u})
	return nil
}
