// internal/app/features/members/login.go
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/authutil"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/members/login. Unknown email and wrong password
// share one message so the response never confirms an account exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		return err
	}
	if in.Email == "" || in.Password == "" {
		return apperr.New(apperr.Validation, "Please provide email and password")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Members.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			// Pay the same hashing cost as the wrong-password branch so
			// response timing does not confirm the account exists.
			authutil.CheckDummyPassword(in.Password)
			return apperr.New(apperr.Unauthorized, "Incorrect email or password.")
		}
		return apperr.FromStore(err, "member")
	}
	if !authutil.CheckPassword(m.PasswordHash, in.Password) {
		return apperr.New(apperr.Unauthorized, "Incorrect email or password.")
	}

	t, err := h.Tokens.Issue(m.ID.Hex())
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "issue token")
	}

	h.Log.Info("member logged in", zap.String("member_id", m.ID.Hex()))
	respond.SuccessMessage(w, http.StatusOK, "connected!", map[string]any{"token": t})
	return nil
}
