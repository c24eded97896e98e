package storage

import (
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestFileKV_GetMissing(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, false)
}

func TestFileKV_PutGet(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = kv.Put("state", []byte(`{"name":"Pixel"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, true)
	testutil.AssertEqual(t, "value", string(value), `{"name":"Pixel"}`)
}

func TestFileKV_Overwrite(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = kv.Put("state", []byte("first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Put("state", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, true)
	testutil.AssertEqual(t, "value", string(value), "second")
}

func TestFileKV_Delete(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = kv.Put("state", []byte("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Delete("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists after delete", ok, false)

	// Deleting an absent key is not an error
	err = kv.Delete("state")
	if err != nil {
		t.Errorf("unexpected error deleting missing key: %v", err)
	}
}

func TestFileKV_NonExistentDirectory(t *testing.T) {
	_, err := NewFileKV("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestSqliteKV_PutGet(t *testing.T) {
	kv, err := NewSqliteKV(filepath.Join(t.TempDir(), "pet.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = kv.Close() }()

	err = kv.Put("state", []byte(`{"days":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, true)
	testutil.AssertEqual(t, "value", string(value), `{"days":3}`)
}

func TestSqliteKV_GetMissing(t *testing.T) {
	kv, err := NewSqliteKV(filepath.Join(t.TempDir(), "pet.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = kv.Close() }()

	_, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, false)
}

func TestSqliteKV_Upsert(t *testing.T) {
	kv, err := NewSqliteKV(filepath.Join(t.TempDir(), "pet.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = kv.Close() }()

	err = kv.Put("state", []byte("first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Put("state", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "exists", ok, true)
	testutil.AssertEqual(t, "value", string(value), "second")
}

func TestSqliteKV_DeleteAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.db")

	kv, err := NewSqliteKV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = kv.Put("state", []byte("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Put("history", []byte("log"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Delete("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = kv.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Surviving keys must be durable across a reopen.
	kv, err = NewSqliteKV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = kv.Close() }()

	_, ok, err := kv.Get("state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "deleted key exists", ok, false)

	value, ok, err := kv.Get("history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "kept key exists", ok, true)
	testutil.AssertEqual(t, "kept value", string(value), "log")
}
