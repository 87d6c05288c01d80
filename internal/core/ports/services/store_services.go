package services

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// KeyValueStore persists small string values per session.
type KeyValueStore interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, scope, key string) (string, bool, error)
	Set(ctx context.Context, scope, key, value string) error
	Remove(ctx context.Context, scope, key string) error
	// GetAll returns every value stored for scope.
	GetAll(ctx context.Context, scope string) (map[string]string, error)
}

// BlockedDaysCache caches derived blocked days per workspace.
type BlockedDaysCache interface {
	Get(ctx context.Context, workspaceID int64) ([]string, bool, error)
	Set(ctx context.Context, workspaceID int64, days []string) error
	Invalidate(ctx context.Context, workspaceID int64) error
}

// EventPublisher announces domain events to other systems.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking domain.Booking) error
}
