package services

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// SearchSvcFacade drives the booking search and review views.
type SearchSvcFacade interface {
	// GetParams returns the stored search values of a session, with defaults for missing keys.
	GetParams(ctx context.Context, session string) (map[string]string, error)

	// UpdateParam stores one search value.
	UpdateParam(ctx context.Context, session, key, value string) error

	// SubmitSearch stores every value and then validates them.
	SubmitSearch(ctx context.Context, session string, values map[string]string) (*domain.SearchParams, error)

	// Review builds the review page for a workspace from the session's search values.
	Review(ctx context.Context, session string, workspaceID int64) (*domain.WorkspaceReview, error)

	// RememberUser stores the logged in user's ID and role in the session.
	RememberUser(ctx context.Context, session string, user *domain.User) error
}

// Geocoder resolves a free-text address to a point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.GeoPoint, error)
}
