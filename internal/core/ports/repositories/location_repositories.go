package repositories

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// LocationReader defines read operations for workspace locations
type LocationReader interface {
	// FindLocationByID retrieves a location by its ID.
	FindLocationByID(ctx context.Context, locationID int64) (*domain.WorkspaceLocation, error)

	// ListLocationsByOwner retrieves the owner's locations, one per distinct full address.
	ListLocationsByOwner(ctx context.Context, ownerID int64) ([]domain.WorkspaceLocation, error)
}

// LocationWriter defines write operations for workspace locations
type LocationWriter interface {
	// SaveLocation inserts a new location and sets its ID.
	SaveLocation(ctx context.Context, location *domain.WorkspaceLocation) error

	// UpdateLocation rewrites an existing location owned by location.OwnerID.
	UpdateLocation(ctx context.Context, location domain.WorkspaceLocation) error
}

// LocationRepositoryFacade combines all location-related repository interfaces
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
