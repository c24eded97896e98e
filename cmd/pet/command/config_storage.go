package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-pet/internal/pet"
	"github.com/pixil98/go-pet/internal/storage"
)

type StorageConfig struct {
	// Activities holds the merged activity catalog; every json asset under
	// the path becomes one catalog entry.
	Activities AssetConfig[*pet.Activity] `json:"activities"`

	// Emojis holds the mood emoji sets.
	Emojis AssetConfig[*pet.EmojiSet] `json:"emojis"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Activities.Validate("activities"))
	el.Add(c.Emojis.Validate("emojis"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
