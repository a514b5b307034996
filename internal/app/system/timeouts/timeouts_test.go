package timeouts_test

import (
	"testing"
	"time"

	"github.com/huddlehq/huddle/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	if timeouts.Ping() != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want %v", timeouts.Ping(), timeouts.DefaultPing)
	}
	if timeouts.Short() != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want %v", timeouts.Short(), timeouts.DefaultShort)
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v, want %v", timeouts.Medium(), timeouts.DefaultMedium)
	}
	if timeouts.Long() != timeouts.DefaultLong {
		t.Errorf("Long: got %v, want %v", timeouts.Long(), timeouts.DefaultLong)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_MEDIUM", "not-a-duration")

	applied := timeouts.ConfigureFromEnv()
	if applied != 1 {
		t.Errorf("applied: got %d, want 1", applied)
	}
	if timeouts.Short() != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", timeouts.Short())
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium should keep default on invalid value, got %v", timeouts.Medium())
	}
}
