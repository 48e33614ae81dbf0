package controllers

import (
	"github.com/rios0rios0/regtravel/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewTravelController); err != nil {
		return err
	}
	if err := container.Provide(NewLocateController); err != nil {
		return err
	}
	if err := container.Provide(NewCleanController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	travelController *TravelController,
	locateController *LocateController,
	cleanController *CleanController,
) *[]entities.Controller {
	return &[]entities.Controller{
		travelController,
		locateController,
		cleanController,
	}
}
