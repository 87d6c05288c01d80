package services

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/dto"
)

// LocationSvcFacade defines operations on workspace locations
type LocationSvcFacade interface {
	// GetLocation retrieves a location by ID.
	GetLocation(ctx context.Context, locationID int64) (*domain.WorkspaceLocation, error)

	// ListOwnerLocations retrieves an owner's locations, distinct by full address.
	ListOwnerLocations(ctx context.Context, ownerID int64) ([]domain.WorkspaceLocation, error)

	// SaveLocation creates the location when req.LocationID is nil and updates it otherwise.
	// The returned bool reports whether a new row was created.
	SaveLocation(ctx context.Context, ownerID int64, req dto.SaveLocationRequest) (*domain.WorkspaceLocation, bool, error)
}

// FeatureSvcFacade exposes the feature catalog
type FeatureSvcFacade interface {
	ListFeatures(ctx context.Context) ([]domain.Feature, error)
}
