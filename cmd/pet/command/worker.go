package command

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-pet/internal/history"
	"github.com/pixil98/go-pet/internal/messaging"
	"github.com/pixil98/go-pet/internal/persist"
	"github.com/pixil98/go-pet/internal/pet"
	"github.com/pixil98/go-pet/internal/sim"
	"github.com/pixil98/go-pet/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the declarative content. A bad catalog is startup-fatal: there
	// is no meaningful default to fall back to.
	activities, err := cfg.Storage.Activities.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating activity store: %w", err)
	}
	emojis, err := cfg.Storage.Emojis.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating emoji store: %w", err)
	}

	kv, err := cfg.State.BuildKVStore()
	if err != nil {
		return nil, fmt.Errorf("creating state store: %w", err)
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Reconcile whatever was saved last session with fresh defaults.
	now := time.Now()
	bridge := persist.NewBridge(kv)
	state := bridge.LoadAndMerge(pet.NewState(&cfg.Settings, now), &cfg.Settings, now)

	hist := history.NewLog(kv, cfg.Settings.MaxHistoryEntries, cfg.Settings.HistoryEnabled)

	session := sim.NewSession(state, &cfg.Settings, activities, emojis, bridge, hist,
		messaging.NewStatePublisher(natsServer), nil)

	return service.WorkerList{
		"nats":        natsServer,
		"commands":    messaging.NewCommandListener(natsServer, session),
		"scheduler":   sim.NewScheduler(session),
		"state-store": &kvCloser{kv: kv},
	}, nil
}

// kvCloser keeps the state store open for the life of the service and
// closes it on shutdown, releasing the sqlite connection cleanly.
type kvCloser struct {
	kv storage.KVStore
}

func (c *kvCloser) Start(ctx context.Context) error {
	<-ctx.Done()
	return c.kv.Close()
}
