// Package history keeps a bounded, most-recent-first record of activity
// executions. It owns its persistence key, independent from the main state
// blob.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pixil98/go-pet/internal/storage"
)

const storageKey = "history"

// Effect is one signed attribute delta shown on a history entry. The value
// is the raw magnitude from the activity definition, not the clamped result.
type Effect struct {
	Icon  string `json:"icon"`
	Value int    `json:"value"`
}

// Entry records a single executed activity.
type Entry struct {
	Id        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Emoji     string   `json:"emoji"`
	Title     string   `json:"title"`
	Effects   []Effect `json:"effects,omitempty"`
}

// Log is a bounded most-recent-first sequence of entries. When disabled it
// accepts and drops everything, so callers never branch on the setting.
type Log struct {
	kv      storage.KVStore
	max     int
	enabled bool

	mu      sync.Mutex
	entries []Entry
}

// NewLog builds a history log over the given store, loading whatever was
// persisted before. A malformed stored record is discarded, never fatal.
func NewLog(kv storage.KVStore, max int, enabled bool) *Log {
	l := &Log{
		kv:      kv,
		max:     max,
		enabled: enabled,
	}

	if !enabled {
		return l
	}

	data, ok, err := kv.Get(storageKey)
	if err != nil {
		slog.Warn("failed to load activity history", "error", err)
		return l
	}
	if !ok {
		return l
	}

	if err := json.Unmarshal(data, &l.entries); err != nil {
		slog.Warn("discarding malformed activity history", "error", err)
		l.entries = nil
	}
	if len(l.entries) > max {
		l.entries = l.entries[:max]
	}

	return l
}

// Add prepends an entry, drops anything past the cap, and persists the
// result. The entry gets a fresh id if the caller left it empty.
func (l *Log) Add(e Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Id == "" {
		e.Id = uuid.New().String()
	}

	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}

	data, err := json.Marshal(l.entries)
	if err != nil {
		return fmt.Errorf("marshalling history: %w", err)
	}
	if err := l.kv.Put(storageKey, data); err != nil {
		return fmt.Errorf("persisting history: %w", err)
	}
	return nil
}

// Reset drops every entry and removes the persisted record.
func (l *Log) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	if err := l.kv.Delete(storageKey); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Entries returns a copy of the log, most recent first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
