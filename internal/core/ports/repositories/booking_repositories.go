package repositories

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// BookingReader defines read operations for bookings. Each list has its own join shape.
type BookingReader interface {
	// ListBookings retrieves every booking without associations.
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	// ListBookingsByUser retrieves a renter's bookings with their workspace and pictures.
	ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error)

	// ListBookingsByOwner retrieves bookings of workspaces whose location belongs to ownerID,
	// with workspace, pictures and location.
	ListBookingsByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)

	// ListBookingsByWorkspace retrieves the bookings of one workspace without associations.
	ListBookingsByWorkspace(ctx context.Context, workspaceID int64) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// CreateBookingWithLock locks the workspace row, rejects overlapping or inactive
	// workspaces and inserts the booking, all in one transaction. It sets the booking ID.
	CreateBookingWithLock(ctx context.Context, booking *domain.Booking) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// BookingRepositoryWithTx extends BookingRepositoryFacade with transaction capabilities
type BookingRepositoryWithTx interface {
	BookingRepositoryFacade
	TransactionManager
}
