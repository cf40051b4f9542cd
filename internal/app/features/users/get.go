// internal/app/features/users/get.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getOne handles GET /api/users/{id}. The path value may be a hex ObjectID
// or a slug; a 24-char hex string is tried as an ID first.
func (h *Handler) getOne(w http.ResponseWriter, r *http.Request) error {
	value := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if id, err := primitive.ObjectIDFromHex(value); err == nil {
		u, err := h.Store.GetByID(ctx, id)
		if err != nil {
			return apperr.FromStore(err, "user")
		}
		respond.Success(w, http.StatusOK, map[string]any{"user": u})
		return nil
	}

	u, err := h.Store.GetBySlug(ctx, value)
	if err != nil {
		return apperr.FromStore(err, "user")
	}
	respond.Success(w, http.StatusOK, map[string]any{"user": u})
	return nil
}
