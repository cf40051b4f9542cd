// internal/app/features/members/signup.go
package members

import (
	"context"
	"net/http"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// signup handles POST /api/members/signup. A successful signup returns a
// bearer token so the new member is signed in immediately.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) error {
	var in memberstore.NewMember
	if err := decodeJSON(r, &in); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := h.Members.Create(ctx, in)
	if err != nil {
		return apperr.FromStore(err, "member")
	}

	t, err := h.Tokens.Issue(m.ID.Hex())
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "issue token")
	}

	h.Log.Info("member signed up", zap.String("member_id", m.ID.Hex()))
	respond.SuccessMessage(w, http.StatusCreated, "Member created successfully", map[string]any{
		"token":  t,
		"member": m,
	})
	return nil
}
