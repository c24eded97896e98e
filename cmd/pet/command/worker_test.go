package command

import (
	"context"
	"testing"
)

type closeTrackingKV struct {
	closed bool
}

func (k *closeTrackingKV) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (k *closeTrackingKV) Put(string, []byte) error         { return nil }
func (k *closeTrackingKV) Delete(string) error              { return nil }
func (k *closeTrackingKV) Close() error                     { k.closed = true; return nil }

func TestKVCloser_ClosesOnShutdown(t *testing.T) {
	kv := &closeTrackingKV{}
	w := &kvCloser{kv: kv}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kv.closed {
		t.Error("expected the state store to be closed on shutdown")
	}
}
