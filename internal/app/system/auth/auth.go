// Package auth guards routes with bearer-token authentication. It verifies
// the token, loads the member it names, checks the credentials are still
// current, and attaches the member to the request context for handlers.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	memberstore "github.com/dalemusser/rosterhub/internal/app/store/members"
	"github.com/dalemusser/rosterhub/internal/app/system/respond"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/dalemusser/rosterhub/internal/app/system/token"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ctxKey struct{}

// CurrentMember returns the authenticated member attached by RequireMember.
func CurrentMember(r *http.Request) (*models.Member, bool) {
	m, ok := r.Context().Value(ctxKey{}).(*models.Member)
	return m, ok
}

// WithTestMember attaches a member to the request context, bypassing token
// verification. Test helper only.
func WithTestMember(r *http.Request, m *models.Member) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, m))
}

// MemberLoader is the slice of the member store the middleware needs.
// GetByID reports a missing member with memberstore.ErrNotFound; any other
// error is a store failure.
type MemberLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error)
}

// Middleware holds the dependencies for the auth guards.
type Middleware struct {
	tokens  *token.Manager
	members MemberLoader
	log     *zap.Logger
}

func NewMiddleware(tokens *token.Manager, members MemberLoader, log *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, members: members, log: log}
}

// RequireMember rejects the request unless it carries a valid bearer token
// naming a member that still exists and whose password has not changed
// since the token was issued.
func (mw *Middleware) RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "Please sign in to continue.")
			return
		}

		claims, err := mw.tokens.Verify(raw)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Please sign in to continue.")
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.MemberID)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Please sign in to continue.")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		member, err := mw.members.GetByID(ctx, id)
		if errors.Is(err, memberstore.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "The member belonging to this token no longer exists.")
			return
		}
		if err != nil {
			mw.log.Error("load member",
				zap.String("member_id", claims.MemberID),
				zap.Error(err),
			)
			respond.Error(w, http.StatusInternalServerError, "Something went very wrong!")
			return
		}
		if member.PasswordChangedAfter(claims.IssuedAt) {
			respond.Error(w, http.StatusUnauthorized, "Password was changed recently. Please sign in again.")
			return
		}

		mw.log.Debug("member authenticated", zap.String("member_id", claims.MemberID))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, member)))
	})
}

// RequireRole rejects authenticated members whose role is not in allowed.
// Mount inside a RequireMember group.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			member, ok := CurrentMember(r)
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "Please sign in to continue.")
				return
			}
			for _, role := range allowed {
				if member.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			respond.Error(w, http.StatusUnauthorized, "You do not have permission to perform this action.")
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	raw := strings.TrimSpace(header[len(prefix):])
	return raw, raw != ""
}
