package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pixil98/go-pet/internal/sim"
)

// Command subjects the listener handles.
const (
	TriggerSubject = "pet.cmd.trigger"
	RenameSubject  = "pet.cmd.rename"
	SpeedSubject   = "pet.cmd.speed"
	ResetSubject   = "pet.cmd.reset"
)

type triggerCommand struct {
	Category string `json:"category"`
}

type renameCommand struct {
	Name string `json:"name"`
}

type speedCommand struct {
	Factor float64 `json:"factor"`
}

// CommandListener bridges NATS command subjects to session operations so
// presentation clients can drive the companion. Commands are fire-and
// -forget; results show up on the state broadcast.
type CommandListener struct {
	server  *NatsServer
	session *sim.Session
}

func NewCommandListener(server *NatsServer, session *sim.Session) *CommandListener {
	return &CommandListener{server: server, session: session}
}

// Start subscribes to the command subjects and blocks until the context is
// cancelled. The broker starts concurrently, so subscription is retried
// until it comes up.
func (c *CommandListener) Start(ctx context.Context) error {
	var unsubs []func()
	defer func() {
		for _, u := range unsubs {
			u()
		}
	}()

	handlers := map[string]func(context.Context, []byte){
		TriggerSubject: c.handleTrigger,
		RenameSubject:  c.handleRename,
		SpeedSubject:   c.handleSpeed,
		ResetSubject:   c.handleReset,
	}

	for subject, handler := range handlers {
		unsub, err := c.subscribe(ctx, subject, handler)
		if err != nil {
			return err
		}
		unsubs = append(unsubs, unsub)
	}

	<-ctx.Done()
	return nil
}

// subscribe retries until the broker accepts connections.
func (c *CommandListener) subscribe(ctx context.Context, subject string, handler func(context.Context, []byte)) (func(), error) {
	for {
		unsub, err := c.server.Subscribe(subject, func(data []byte) {
			handler(ctx, data)
		})
		if err == nil {
			return unsub, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (c *CommandListener) handleTrigger(ctx context.Context, data []byte) {
	var cmd triggerCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		slog.Warn("bad trigger command", "error", err)
		return
	}
	if _, ok := c.session.TriggerActivity(ctx, cmd.Category); !ok {
		slog.Info("no eligible activity", "category", cmd.Category)
	}
}

func (c *CommandListener) handleRename(ctx context.Context, data []byte) {
	var cmd renameCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		slog.Warn("bad rename command", "error", err)
		return
	}
	if _, err := c.session.Rename(ctx, cmd.Name); err != nil {
		slog.Warn("rename rejected", "error", err)
	}
}

func (c *CommandListener) handleSpeed(ctx context.Context, data []byte) {
	var cmd speedCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		slog.Warn("bad speed command", "error", err)
		return
	}
	if err := c.session.SetTimeFactor(ctx, cmd.Factor); err != nil {
		slog.Warn("speed change rejected", "error", err)
	}
}

func (c *CommandListener) handleReset(ctx context.Context, _ []byte) {
	c.session.Reset(ctx)
}
