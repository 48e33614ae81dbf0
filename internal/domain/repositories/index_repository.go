package repositories

import (
	"context"

	"github.com/rios0rios0/regtravel/internal/domain/entities"
)

// IndexRepository reads snapshot directories into in-memory registry indexes.
type IndexRepository interface {
	Load(ctx context.Context, snapshots []entities.RegistrySnapshot) ([]*entities.RegistryIndex, error)
	Details(ctx context.Context, index *entities.RegistryIndex, entry entities.PackageEntry) (*entities.PackageDetails, error)
}
