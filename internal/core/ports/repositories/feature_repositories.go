package repositories

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// FeatureRepositoryFacade exposes the feature catalog.
type FeatureRepositoryFacade interface {
	// ListFeatures retrieves the catalog ordered by ID.
	ListFeatures(ctx context.Context) ([]domain.Feature, error)
}
