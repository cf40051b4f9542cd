package userstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/rosterhub/internal/domain/models"
)

func validNewUser() NewUser {
	return NewUser{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "Ann.Lee@Example.com",
		Gender:    "female",
		IPAddress: "10.0.0.7",
	}
}

func TestBuild(t *testing.T) {
	u, err := Build(validNewUser())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if u.Email != "ann.lee@example.com" {
		t.Errorf("email: got %q, want normalized lowercase", u.Email)
	}
	if u.Gender != "Female" {
		t.Errorf("gender: got %q, want canonical %q", u.Gender, "Female")
	}
	if u.Slug != "ann-lee" {
		t.Errorf("slug: got %q, want %q", u.Slug, "ann-lee")
	}
	if !u.ID.IsZero() {
		t.Error("Build must not assign an ID")
	}
}

func TestBuild_StripsMarkup(t *testing.T) {
	in := validNewUser()
	in.FirstName = "<b>Ann</b>"
	u, err := Build(in)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if u.FirstName != "Ann" {
		t.Errorf("first name: got %q, want %q", u.FirstName, "Ann")
	}
}

func TestBuild_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*NewUser)
	}{
		{"missing first name", func(in *NewUser) { in.FirstName = "" }},
		{"first name too long", func(in *NewUser) { in.FirstName = strings.Repeat("a", 41) }},
		{"last name too short", func(in *NewUser) { in.LastName = "Le" }},
		{"missing email", func(in *NewUser) { in.Email = "" }},
		{"bad email", func(in *NewUser) { in.Email = "not-an-email" }},
		{"bad gender", func(in *NewUser) { in.Gender = "other" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validNewUser()
			tc.mutate(&in)
			if _, err := Build(in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestBuild_EmptyGenderAllowed(t *testing.T) {
	in := validNewUser()
	in.Gender = ""
	u, err := Build(in)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if u.Gender != "" {
		t.Errorf("gender: got %q, want empty", u.Gender)
	}
}

func TestApplyUpdate(t *testing.T) {
	u, err := Build(validNewUser())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	newLast := "Lopez"
	updated, err := ApplyUpdate(u, Update{LastName: &newLast})
	if err != nil {
		t.Fatalf("ApplyUpdate failed: %v", err)
	}
	if updated.LastName != "Lopez" {
		t.Errorf("last name: got %q", updated.LastName)
	}
	if updated.Slug != "ann-lopez" {
		t.Errorf("slug: got %q, want recomputed %q", updated.Slug, "ann-lopez")
	}
	if updated.FirstName != "Ann" {
		t.Errorf("first name: got %q, want untouched %q", updated.FirstName, "Ann")
	}
}

func TestApplyUpdate_Invalid(t *testing.T) {
	u := models.User{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"}
	bad := "Le"
	if _, err := ApplyUpdate(u, Update{LastName: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
