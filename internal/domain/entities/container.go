package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders keeps the layer in the container chain. Entities are
// values built per invocation from flags and the config file, so none is
// registered.
func RegisterProviders(_ *dig.Container) error {
	return nil
}
