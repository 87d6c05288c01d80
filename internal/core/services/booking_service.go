package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/Sachin796/Worktopia/internal/platform/metrics"
	"github.com/Sachin796/Worktopia/internal/utils/availability"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryWithTx
	cache       portssvc.BlockedDaysCache
	publisher   portssvc.EventPublisher
}

// BookingServiceOption configures optional collaborators of the booking service.
type BookingServiceOption func(*bookingService)

// WithBlockedDaysCache caches derived blocked days.
func WithBlockedDaysCache(cache portssvc.BlockedDaysCache) BookingServiceOption {
	return func(s *bookingService) {
		s.cache = cache
	}
}

// WithEventPublisher publishes booking.created events.
func WithEventPublisher(publisher portssvc.EventPublisher) BookingServiceOption {
	return func(s *bookingService) {
		s.publisher = publisher
	}
}

// NewBookingService creates a booking service.
func NewBookingService(repo portsrepo.BookingRepositoryWithTx, opts ...BookingServiceOption) portssvc.BookingSvcFacade {
	s := &bookingService{bookingRepo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user bookings", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list owner bookings", slog.Int64("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list bookings for owner %d: %w", ownerID, err)
	}
	return bookings, nil
}

func (s *bookingService) ListWorkspaceBookings(ctx context.Context, workspaceID int64) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace bookings", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to list bookings for workspace %d: %w", workspaceID, err)
	}
	return bookings, nil
}

// GetBlockedDays serves from the cache when possible. Cache failures fall back to the store.
func (s *bookingService) GetBlockedDays(ctx context.Context, workspaceID int64) ([]string, error) {
	if s.cache != nil {
		days, ok, err := s.cache.Get(ctx, workspaceID)
		switch {
		case err != nil:
			metrics.IncBlockedDaysCache("error")
			s.LogError(ctx, err, "Blocked days cache read failed", slog.Int64("workspace_id", workspaceID))
		case ok:
			metrics.IncBlockedDaysCache("hit")
			return days, nil
		default:
			metrics.IncBlockedDaysCache("miss")
		}
	}

	bookings, err := s.ListWorkspaceBookings(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	days := availability.FromBookings(bookings).Strings()

	if s.cache != nil {
		if err := s.cache.Set(ctx, workspaceID, days); err != nil {
			s.LogError(ctx, err, "Blocked days cache write failed", slog.Int64("workspace_id", workspaceID))
		}
	}
	return days, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID int64, req dto.CreateBookingRequest) (*domain.Booking, error) {
	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("endDate must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationFailedError("endDate must not be before startDate")
	}

	booking := &domain.Booking{
		StartDate:   start,
		EndDate:     end,
		UserID:      renterID,
		WorkspaceID: req.WorkspaceID,
	}
	if err := s.bookingRepo.CreateBookingWithLock(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to create booking",
			slog.Int64("workspace_id", req.WorkspaceID),
			slog.Int64("user_id", renterID))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	metrics.IncBookingsCreated()
	s.LogInfo(ctx, "Booking created", slog.Int64("booking_id", booking.BookingID), slog.Int64("workspace_id", booking.WorkspaceID))

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, booking.WorkspaceID); err != nil {
			s.LogError(ctx, err, "Failed to invalidate blocked days cache", slog.Int64("workspace_id", booking.WorkspaceID))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(ctx, *booking); err != nil {
			s.LogError(ctx, err, "Failed to publish booking event", slog.Int64("booking_id", booking.BookingID))
		}
	}
	return booking, nil
}

var exportHeaders = []any{"Booking ID", "Workspace", "Address", "Renter ID", "Start", "End", "Days", "Daily Rate", "Total"}

// ExportOwnerBookings writes one row per booking to a "Bookings" sheet.
func (s *bookingService) ExportOwnerBookings(ctx context.Context, ownerID int64) ([]byte, error) {
	bookings, err := s.ListOwnerBookings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	}

	for i, b := range bookings {
		var name, address string
		rate := decimal.Zero
		if b.Workspace != nil {
			name = b.Workspace.Name
			rate = b.Workspace.DailyRate
			if b.Workspace.Location != nil {
				address = b.Workspace.Location.FullAddress
			}
		}
		days := b.Days()
		total := rate.Mul(decimal.NewFromInt(int64(days))).Round(2)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell: %w", err)
		}
		row := []any{
			b.BookingID,
			name,
			address,
			b.UserID,
			b.StartDate.Format(domain.DateLayout),
			b.EndDate.Format(domain.DateLayout),
			days,
			rate.InexactFloat64(),
			total.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write booking row: %w", err)
		}
	}
	_ = f.SetColWidth(sheet, "B", "C", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to render bookings workbook", slog.Int64("owner_id", ownerID))
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
