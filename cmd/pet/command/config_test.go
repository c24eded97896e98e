package command

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestStateBackend_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		text   string
		exp    StateBackend
		expErr string
	}{
		"file": {
			text: "file",
			exp:  StateBackendFile,
		},
		"sqlite": {
			text: "sqlite",
			exp:  StateBackendSqlite,
		},
		"unknown": {
			text:   "postgres",
			expErr: "unknown state backend",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b StateBackend
			err := b.UnmarshalText([]byte(tt.text))
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "backend", b, tt.exp)
		})
	}
}

func TestStateConfig_Validate(t *testing.T) {
	cfg := StateConfig{}
	testutil.AssertErrorContains(t, cfg.validate(), "state path is required")

	cfg.Path = "/var/lib/pet"
	if err := cfg.validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAssetConfig_Validate(t *testing.T) {
	cfg := AssetConfig[*mockSpec]{}
	testutil.AssertErrorContains(t, cfg.Validate("activities"), "path is required")

	cfg.Path = "/nonexistent/path/that/does/not/exist"
	testutil.AssertErrorContains(t, cfg.Validate("activities"), "invalid path")

	cfg.Path = t.TempDir()
	if err := cfg.Validate("activities"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type mockSpec struct{}

func (s *mockSpec) Validate() error { return nil }

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()

	raw := []byte(`{
		"settings": {
			"time_factor": 1,
			"xp_per_level": 100,
			"sleep_threshold": 20,
			"wake_threshold": 80
		},
		"storage": {
			"activities": {"path": "` + dir + `"},
			"emojis": {"path": "` + dir + `"}
		},
		"state": {"backend": "file", "path": "` + dir + `"},
		"nats": {}
	}`)

	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "state backend", cfg.State.Backend, StateBackendFile)
}

func TestConfig_Validate_MissingPaths(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	testutil.AssertErrorContains(t, err, "path is required")
}
