package members_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/features/members"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/auth"
	"github.com/dalemusser/rosterhub/internal/app/system/token"
	"github.com/dalemusser/rosterhub/internal/testutil"
	"go.uber.org/zap"
)

type fixture struct {
	router http.Handler
	store  *testutil.MemMemberStore
	mail   *testutil.MailRecorder
	tokens *token.Manager
}

func newFixture() *fixture {
	store := testutil.NewMemMemberStore()
	mail := &testutil.MailRecorder{}
	tokens := token.NewManager("test-secret", time.Hour)
	logger := zap.NewNop()
	rnd := apperr.NewRenderer(logger, false)
	mw := auth.NewMiddleware(tokens, store, logger)
	h := members.NewHandler(store, tokens, mail, rnd, logger, "http://localhost:3000", 10*time.Minute)
	return &fixture{
		router: members.Routes(h, mw),
		store:  store,
		mail:   mail,
		tokens: tokens,
	}
}

func (f *fixture) do(t *testing.T, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, method, target, body)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func signupBody(email string) map[string]string {
	return map[string]string{
		"name":              "Ann Lee",
		"email":             email,
		"password":          "sekrit-123",
		"passwordConfirmed": "sekrit-123",
	}
}

func tokenFrom(t *testing.T, env testutil.Envelope) string {
	t.Helper()
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("parse token data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("expected a token in the response data")
	}
	return data.Token
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestSignup(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected status %d, got %d (%s)", http.StatusCreated, rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Message != "Member created successfully" {
		t.Errorf("message: got %q", env.Message)
	}
	tokenFrom(t, env)

	if strings.Contains(rec.Body.String(), "sekrit") || strings.Contains(rec.Body.String(), "password_hash") {
		t.Errorf("signup response leaks credentials: %s", rec.Body.String())
	}

	// Same email again
	rec = f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup: expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestSignup_Invalid(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"password mismatch", func(m map[string]string) { m["passwordConfirmed"] = "something-else" }},
		{"short password", func(m map[string]string) { m["password"], m["passwordConfirmed"] = "short", "short" }},
		{"missing name", func(m map[string]string) { m["name"] = "" }},
		{"bad role", func(m map[string]string) { m["role"] = "superuser" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := signupBody("new@example.com")
			tc.mutate(body)
			rec := f.do(t, "POST", "/signup", body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d (%s)", http.StatusBadRequest, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)

	// Wrong password
	rec := f.do(t, "POST", "/login", map[string]string{
		"email": "ann@example.com", "password": "wrong-password",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Message != "Incorrect email or password." {
		t.Errorf("wrong password message: got %q", env.Message)
	}

	// Unknown email gets the same message
	rec = f.do(t, "POST", "/login", map[string]string{
		"email": "nobody@example.com", "password": "sekrit-123",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := testutil.DecodeEnvelope(t, rec).Message; got != env.Message {
		t.Errorf("unknown email message: got %q, want %q", got, env.Message)
	}

	// Correct credentials
	rec = f.do(t, "POST", "/login", map[string]string{
		"email": "ann@example.com", "password": "sekrit-123",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	env = testutil.DecodeEnvelope(t, rec)
	if env.Message != "connected!" {
		t.Errorf("login message: got %q", env.Message)
	}
	tokenFrom(t, env)
}

func TestMe(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)
	tok := tokenFrom(t, testutil.DecodeEnvelope(t, rec))

	// No token
	rec = f.do(t, "GET", "/me", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	// Garbage token
	rec = f.do(t, "GET", "/me", nil, bearer("not-a-real-token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	// Valid token
	rec = f.do(t, "GET", "/me", nil, bearer(tok))
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	var data struct {
		Member struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"member"`
	}
	env := testutil.DecodeEnvelope(t, rec)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("parse member data: %v", err)
	}
	if data.Member.Email != "ann@example.com" {
		t.Errorf("email: got %q, want %q", data.Member.Email, "ann@example.com")
	}
	if data.Member.Role != "user" {
		t.Errorf("role: got %q, want %q", data.Member.Role, "user")
	}
}

func TestListMembers_AdminOnly(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "POST", "/signup", signupBody("user@example.com"), nil)
	userTok := tokenFrom(t, testutil.DecodeEnvelope(t, rec))

	adminBody := signupBody("admin@example.com")
	adminBody["role"] = "admin"
	rec = f.do(t, "POST", "/signup", adminBody, nil)
	adminTok := tokenFrom(t, testutil.DecodeEnvelope(t, rec))

	// Regular member is refused
	rec = f.do(t, "GET", "/", nil, bearer(userTok))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-admin list: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	// Admin sees everyone
	rec = f.do(t, "GET", "/", nil, bearer(adminTok))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin list: expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	var data struct {
		Results int `json:"results"`
	}
	env := testutil.DecodeEnvelope(t, rec)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("parse list data: %v", err)
	}
	if data.Results != 2 {
		t.Errorf("results: got %d, want 2", data.Results)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)

	// Unknown email
	rec := f.do(t, "POST", "/forgot-password", map[string]string{"email": "nobody@example.com"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown email: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	// Known email sends mail with the reset link
	rec = f.do(t, "POST", "/forgot-password", map[string]string{"email": "ann@example.com"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("forgot: expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	if env := testutil.DecodeEnvelope(t, rec); env.Message != "Token sent to email!" {
		t.Errorf("forgot message: got %q", env.Message)
	}
	msg, ok := f.mail.Last()
	if !ok {
		t.Fatal("expected a reset email to be recorded")
	}
	marker := "/api/members/reset-password/"
	i := strings.Index(msg.Body, marker)
	if i < 0 {
		t.Fatalf("reset email has no reset link: %q", msg.Body)
	}
	secret := strings.Fields(msg.Body[i+len(marker):])[0]

	// Mismatched confirmation
	rec = f.do(t, "PATCH", "/reset-password/"+secret, map[string]string{
		"password": "new-sekrit-99", "passwordConfirmed": "other",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatched reset: expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	// Successful reset
	rec = f.do(t, "PATCH", "/reset-password/"+secret, map[string]string{
		"password": "new-sekrit-99", "passwordConfirmed": "new-sekrit-99",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	tokenFrom(t, testutil.DecodeEnvelope(t, rec))

	// The secret is single-use
	rec = f.do(t, "PATCH", "/reset-password/"+secret, map[string]string{
		"password": "another-pass-1", "passwordConfirmed": "another-pass-1",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("reused secret: expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if env := testutil.DecodeEnvelope(t, rec); env.Message != "Token is invalid or has expired" {
		t.Errorf("reused secret message: got %q", env.Message)
	}

	// Old password no longer works, new one does
	rec = f.do(t, "POST", "/login", map[string]string{
		"email": "ann@example.com", "password": "sekrit-123",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("old password: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	rec = f.do(t, "POST", "/login", map[string]string{
		"email": "ann@example.com", "password": "new-sekrit-99",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("new password: expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestForgotPassword_MailFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/signup", signupBody("ann@example.com"), nil)
	f.mail.Err = errors.New("smtp unreachable")

	rec := f.do(t, "POST", "/forgot-password", map[string]string{"email": "ann@example.com"}, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusInternalServerError, rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Status != "error" {
		t.Errorf("status: got %q, want %q", env.Status, "error")
	}
	if env.Message != "There was an error sending the email. Try again later!" {
		t.Errorf("message: got %q", env.Message)
	}

	m, err := f.store.GetByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if m.PasswordResetTokenHash != "" || m.PasswordResetExpiresAt != nil {
		t.Error("expected reset state to be rolled back after mail failure")
	}
}
