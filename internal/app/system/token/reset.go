// internal/app/system/token/reset.go
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NewResetSecret generates a one-time password-reset secret. The plaintext
// goes to the member by email; only the digest is stored, so a database
// leak cannot be replayed into a reset.
func NewResetSecret() (plain, digest string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate reset secret: %w", err)
	}
	plain = hex.EncodeToString(buf)
	return plain, HashResetSecret(plain), nil
}

// HashResetSecret digests a reset secret for storage and lookup.
func HashResetSecret(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
