package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KVStore is the opaque persistence service the simulation saves into. The
// engine only ever needs get/put on whole records.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// FileKV stores each key as one JSON document in a directory, written
// atomically so an interrupted save never leaves a truncated record.
type FileKV struct {
	path string

	mu sync.Mutex
}

func NewFileKV(path string) (*FileKV, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", path)
	}

	return &FileKV{path: path}, nil
}

func (s *FileKV) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %q: %w", key, err)
	}
	return data, true, nil
}

func (s *FileKV) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWrite(s.filePath(key), value, 0644)
}

func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *FileKV) Close() error {
	return nil
}

func (s *FileKV) filePath(key string) string {
	return filepath.Join(s.path, fmt.Sprintf("%s.json", key))
}
