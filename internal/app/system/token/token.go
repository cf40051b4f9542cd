// Package token issues and verifies the bearer tokens that authenticate
// members, plus the one-time secrets used by the password-reset flow.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong algorithm, malformed, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of a bearer token.
type Claims struct {
	MemberID string
	IssuedAt time.Time
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token whose subject is the member's ID.
func (m *Manager) Issue(memberID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   memberID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Only HS256 is accepted; a
// token without issued-at or expiry claims is rejected.
func (m *Manager) Verify(tokenString string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var rc jwt.RegisteredClaims
	t, err := parser.ParseWithClaims(tokenString, &rc, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalidToken
	}
	if rc.Subject == "" || rc.IssuedAt == nil || rc.ExpiresAt == nil {
		return Claims{}, ErrInvalidToken
	}
	return Claims{MemberID: rc.Subject, IssuedAt: rc.IssuedAt.Time}, nil
}
