// internal/app/features/members/password.go
package members

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/authutil"
	"github.com/dalemusser/rosterhub/internal/app/system/mailer"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/dalemusser/rosterhub/internal/app/system/token"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type forgotRequest struct {
	Email string `json:"email"`
}

// forgotPassword handles POST /api/members/forgot-password. It stores a
// reset-secret digest on the member and emails the plaintext secret. If the
// email cannot be sent the reset state is rolled back so no orphaned token
// lingers.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) error {
	var in forgotRequest
	if err := decodeJSON(r, &in); err != nil {
		return err
	}
	if in.Email == "" {
		return apperr.New(apperr.Validation, "Please provide an email address")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	m, err := h.Members.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, memberstore.ErrNotFound) {
			return apperr.New(apperr.NotFound, "There is no member with that email address.")
		}
		return apperr.FromStore(err, "member")
	}

	plain, digest, err := token.NewResetSecret()
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "generate reset secret")
	}
	expiresAt := time.Now().UTC().Add(h.ResetExpiry)
	if err := h.Members.SetResetToken(ctx, m.ID, digest, expiresAt); err != nil {
		return apperr.FromStore(err, "member")
	}

	resetURL := fmt.Sprintf("%s/api/members/reset-password/%s", h.BaseURL, plain)
	msg := mailer.Message{
		To:      m.Email,
		Subject: fmt.Sprintf("Your password reset token (valid for %s)", h.ResetExpiry),
		Body:    mailer.BuildResetEmail(resetURL, h.ResetExpiry),
	}
	if err := h.Mail.Send(msg); err != nil {
		h.Log.Error("reset email failed", zap.String("member_id", m.ID.Hex()), zap.Error(err))
		if clearErr := h.Members.ClearResetToken(ctx, m.ID); clearErr != nil {
			h.Log.Error("reset rollback failed", zap.String("member_id", m.ID.Hex()), zap.Error(clearErr))
		}
		return apperr.Wrap(err, apperr.Internal, "There was an error sending the email. Try again later!")
	}

	h.Log.Info("reset email sent", zap.String("member_id", m.ID.Hex()))
	respond.SuccessMessage(w, http.StatusOK, "Token sent to email!", nil)
	return nil
}

type resetRequest struct {
	Password          string `json:"password"`
	PasswordConfirmed string `json:"passwordConfirmed"`
}

// resetPassword handles PATCH /api/members/reset-password/{token}. The
// digest lookup and password write happen as one guarded update, so a token
// works at most once. A successful reset returns a fresh bearer token.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) error {
	var in resetRequest
	if err := decodeJSON(r, &in); err != nil {
		return err
	}
	if err := authutil.ValidatePassword(in.Password); err != nil {
		return apperr.New(apperr.Validation, err.Error())
	}
	if in.Password != in.PasswordConfirmed {
		return apperr.New(apperr.Validation, "passwords do not match")
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "hash password")
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	digest := token.HashResetSecret(chi.URLParam(r, "token"))
	m, err := h.Members.ResetPassword(ctx, digest, hash)
	if err != nil {
		return apperr.FromStore(err, "member")
	}

	t, err := h.Tokens.Issue(m.ID.Hex())
	if err != nil {
		return apperr.Wrap(err, apperr.Unknown, "issue token")
	}

	h.Log.Info("password reset", zap.String("member_id", m.ID.Hex()))
	respond.SuccessMessage(w, http.StatusOK, "Password updated successfully", map[string]any{"token": t})
	return nil
}
