// Package seed loads user fixture records from a JSON file for the seeding
// tool.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
)

// Record is one fixture entry as it appears in the seed file.
type Record struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	IPAddress string `json:"ip_address"`
}

// NewUser converts the fixture entry to a create payload.
func (r Record) NewUser() userstore.NewUser {
	return userstore.NewUser{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Gender:    r.Gender,
		IPAddress: r.IPAddress,
	}
}

// Source reads fixture records from a file path.
type Source struct {
	path    string
	records []Record
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load parses the file; call before Records.
func (s *Source) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse seed file %s: %w", s.path, err)
	}
	s.records = records
	return nil
}

// Reload re-reads the file, replacing the loaded records only on success.
func (s *Source) Reload() error {
	return s.Load()
}

// Records returns the loaded fixture entries.
func (s *Source) Records() []Record {
	return s.records
}
