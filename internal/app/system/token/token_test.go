package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue("64f1c0ffee0000000000abcd")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.MemberID != "64f1c0ffee0000000000abcd" {
		t.Errorf("member id: got %q", claims.MemberID)
	}
	if time.Since(claims.IssuedAt) > time.Minute {
		t.Errorf("issued-at too old: %v", claims.IssuedAt)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue("abc")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	signed, err := m.Issue("abc")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(raw); err != ErrInvalidToken {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "abc",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := NewManager("test-secret", time.Hour).Verify(raw); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestNewResetSecret(t *testing.T) {
	plain, digest, err := NewResetSecret()
	if err != nil {
		t.Fatalf("NewResetSecret failed: %v", err)
	}
	if len(plain) != 64 {
		t.Errorf("plain length: got %d, want 64", len(plain))
	}
	if digest != HashResetSecret(plain) {
		t.Error("digest does not match HashResetSecret(plain)")
	}
	if strings.Contains(digest, plain) || digest == plain {
		t.Error("digest must not contain the plaintext secret")
	}

	plain2, _, err := NewResetSecret()
	if err != nil {
		t.Fatalf("NewResetSecret failed: %v", err)
	}
	if plain == plain2 {
		t.Error("consecutive secrets must differ")
	}
}
