package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-pet/internal/pet"
)

type Config struct {
	Settings pet.Settings  `json:"settings"`
	Storage  StorageConfig `json:"storage"`
	State    StateConfig   `json:"state"`
	Nats     NatsConfig    `json:"nats"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if err := c.Settings.Validate(); err != nil {
		el.Add(fmt.Errorf("settings: %w", err))
	}

	el.Add(c.Storage.validate())
	el.Add(c.State.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}
