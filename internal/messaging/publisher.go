package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-pet/internal/history"
	"github.com/pixil98/go-pet/internal/pet"
)

// Broadcast subjects presentation clients subscribe to.
const (
	StateSubject   = "pet.state"
	HistorySubject = "pet.history"
)

// StatePublisher broadcasts state snapshots and history entries over NATS.
type StatePublisher struct {
	server *NatsServer
}

func NewStatePublisher(server *NatsServer) *StatePublisher {
	return &StatePublisher{server: server}
}

func (p *StatePublisher) PublishState(s *pet.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling state: %w", err)
	}
	return p.server.Publish(StateSubject, data)
}

func (p *StatePublisher) PublishHistory(e history.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshalling history entry: %w", err)
	}
	return p.server.Publish(HistorySubject, data)
}
