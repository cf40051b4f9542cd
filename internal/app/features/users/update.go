// internal/app/features/users/update.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// update handles PATCH /api/users/{id}. Only an ObjectID addresses writes;
// slugs are read-only handles.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	value := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return apperr.InvalidID(value)
	}

	var upd userstore.Update
	if err := decodeJSON(r, &upd); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		return apperr.FromStore(err, "user")
	}
	respond.Success(w, http.StatusOK, map[string]any{"user": u})
	return nil
}
