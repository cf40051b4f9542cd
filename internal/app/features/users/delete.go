// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// del handles DELETE /api/users/{id}. Success is 204 with an empty body.
func (h *Handler) del(w http.ResponseWriter, r *http.Request) error {
	value := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return apperr.InvalidID(value)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		return apperr.FromStore(err, "user")
	}

	h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
	return nil
}
