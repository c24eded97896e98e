package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-pet/internal/storage"
)

type StateBackend int

const (
	StateBackendFile StateBackend = iota
	StateBackendSqlite
)

func (b *StateBackend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "file":
		*b = StateBackendFile
	case "sqlite":
		*b = StateBackendSqlite
	default:
		return fmt.Errorf("unknown state backend: %s", text)
	}
	return nil
}

type StateConfig struct {
	Backend StateBackend `json:"backend"`

	// Path is a directory for the file backend, a database file for sqlite.
	Path string `json:"path"`
}

func (c *StateConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("state path is required"))
	}

	return el.Err()
}

func (c *StateConfig) BuildKVStore() (storage.KVStore, error) {
	switch c.Backend {
	case StateBackendFile:
		return storage.NewFileKV(c.Path)
	case StateBackendSqlite:
		return storage.NewSqliteKV(c.Path)
	default:
		return nil, fmt.Errorf("unknown state backend: %v", c.Backend)
	}
}
