// Package persist reconciles the companion's state with the key-value
// store: full-record saves, and merge-on-load with decay replayed for the
// time the process was down.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-pet/internal/pet"
	"github.com/pixil98/go-pet/internal/storage"
)

const stateKey = "state"

// record is the persisted envelope. The time factor in effect at save time
// rides along so decay replay on the next load uses the rate the state
// actually aged at, even if the configured factor changed in between.
type record struct {
	pet.State
	TimeFactor float64 `json:"time_factor"`
}

// Bridge serializes state into a KVStore.
type Bridge struct {
	kv storage.KVStore
}

func NewBridge(kv storage.KVStore) *Bridge {
	return &Bridge{kv: kv}
}

// Save writes the full state, stamping it with the current wall time.
func (b *Bridge) Save(s *pet.State, factor float64, now time.Time) error {
	s.LastSavedMs = now.UnixMilli()

	rec := record{State: *s, TimeFactor: factor}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}

	if err := b.kv.Put(stateKey, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// LoadAndMerge returns the persisted state merged over defaults, with the
// decay that would have accrued since the last save already applied. When
// nothing was saved, or the record is unreadable, the defaults come back
// unchanged; a broken save file is never fatal.
func (b *Bridge) LoadAndMerge(defaults *pet.State, settings *pet.Settings, now time.Time) *pet.State {
	data, ok, err := b.kv.Get(stateKey)
	if err != nil {
		slog.Warn("failed to read saved state, starting fresh", "error", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	// Unmarshal over a copy of the defaults: fields a newer schema added
	// keep their default values when the saved record predates them.
	rec := record{State: *defaults, TimeFactor: settings.TimeFactor}
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("discarding malformed saved state", "error", err)
		return defaults
	}

	merged := rec.State
	replayDecay(&merged, rec.TimeFactor, settings, now)
	return &merged
}

// replayDecay applies the decay the companion would have experienced while
// the process was not running. One missed tick is one simulated hour of
// decay and one clock minute, the same accounting the live scheduler uses.
func replayDecay(s *pet.State, factor float64, settings *pet.Settings, now time.Time) {
	if s.LastSavedMs == 0 {
		return
	}
	if factor <= 0 {
		factor = settings.TimeFactor
	}

	passedSeconds := float64(now.UnixMilli()-s.LastSavedMs) / 1000
	if passedSeconds < 0 {
		return
	}

	// 60/factor real seconds per simulated hour.
	passedHours := int(passedSeconds * factor / 60)
	if passedHours < 1 {
		return
	}

	for attr, rate := range settings.DecayPerHour {
		s.Decay(attr, rate*passedHours)
	}
	s.AdvanceClock(passedHours)
	s.ClockAnchorMs = now.UnixMilli()
}
