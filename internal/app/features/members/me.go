// internal/app/features/members/me.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/auth"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// me handles GET /api/members/me for the authenticated member.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	m, ok := auth.CurrentMember(r)
	if !ok {
		return apperr.New(apperr.Unauthorized, "Please sign in to continue.")
	}
	respond.Success(w, http.StatusOK, map[string]any{"member": m})
	return nil
}

// list handles GET /api/members (admin only).
func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Members.List(ctx)
	if err != nil {
		return apperr.FromStore(err, "member")
	}
	respond.Success(w, http.StatusOK, map[string]any{
		"results": len(members),
		"members": members,
	})
	return nil
}
