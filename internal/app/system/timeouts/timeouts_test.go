package timeouts

import (
	"testing"
	"time"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 2 * time.Second, Batch: 90 * time.Second})
	if got := Short(); got != 2*time.Second {
		t.Errorf("Short: got %v, want %v", got, 2*time.Second)
	}
	if got := Batch(); got != 90*time.Second {
		t.Errorf("Batch: got %v, want %v", got, 90*time.Second)
	}

	// Zero values keep the current setting.
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium: got %v, want default %v", got, DefaultMedium)
	}

	Reset()
	if got := Short(); got != DefaultShort {
		t.Errorf("Short after Reset: got %v, want %v", got, DefaultShort)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_PING", "3s")
	t.Setenv("TIMEOUT_LONG", "45s")
	t.Setenv("TIMEOUT_MEDIUM", "not-a-duration")

	if n := ConfigureFromEnv(); n != 2 {
		t.Errorf("applied: got %d, want 2", n)
	}
	if got := Ping(); got != 3*time.Second {
		t.Errorf("Ping: got %v, want %v", got, 3*time.Second)
	}
	if got := Long(); got != 45*time.Second {
		t.Errorf("Long: got %v, want %v", got, 45*time.Second)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium with bad value: got %v, want default %v", got, DefaultMedium)
	}
}
