package services

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/dto"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	// ListAllBookings retrieves every booking.
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)

	// ListUserBookings retrieves a renter's bookings with workspace and pictures.
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)

	// ListOwnerBookings retrieves bookings on workspaces whose location belongs to ownerID.
	ListOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error)

	// ListWorkspaceBookings retrieves the bookings of one workspace.
	ListWorkspaceBookings(ctx context.Context, workspaceID int64) ([]domain.Booking, error)

	// GetBlockedDays returns the booked days of a workspace formatted for the date picker.
	GetBlockedDays(ctx context.Context, workspaceID int64) ([]string, error)
}

// BookingWriterSvc defines write operations for bookings
type BookingWriterSvc interface {
	// CreateBooking books a workspace for renterID.
	CreateBooking(ctx context.Context, renterID int64, req dto.CreateBookingRequest) (*domain.Booking, error)
}

// BookingExportSvc renders booking reports.
type BookingExportSvc interface {
	// ExportOwnerBookings renders the owner's bookings as an xlsx workbook.
	ExportOwnerBookings(ctx context.Context, ownerID int64) ([]byte, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
	BookingExportSvc
}
