package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for bookings.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryWithTx {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BookingRepositoryWithTx = (*PgxBookingRepository)(nil)

const bookingColumns = `b.booking_id, b.start_date, b.end_date, b.user_id, b.workspace_id, b.created_at, b.updated_at`

func bookingScanTargets(b *domain.Booking) []any {
	return []any{&b.BookingID, &b.StartDate, &b.EndDate, &b.UserID, &b.WorkspaceID, &b.CreatedAt, &b.UpdatedAt}
}

// bookingShape selects which associations a booking query joins.
type bookingShape int

const (
	shapeBare bookingShape = iota
	shapeWithWorkspace
	shapeWithWorkspaceAndLocation
)

func (r *PgxBookingRepository) listBookings(ctx context.Context, shape bookingShape, filterQuery string, args ...any) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns
	switch shape {
	case shapeWithWorkspace:
		query += `,` + workspaceColumns + `
		FROM bookings b
		JOIN workspaces w ON w.workspace_id = b.workspace_id
		`
	case shapeWithWorkspaceAndLocation:
		query += `,` + workspaceColumns + `,` + locationColumns + `
		FROM bookings b
		JOIN workspaces w ON w.workspace_id = b.workspace_id
		JOIN workspace_locations l ON l.location_id = w.location_id
		`
	default:
		query += ` FROM bookings b `
	}
	query += filterQuery + ` ORDER BY b.booking_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query bookings", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		targets := bookingScanTargets(&b)
		if shape != shapeBare {
			b.Workspace = &domain.Workspace{}
			targets = append(targets, workspaceScanTargets(b.Workspace)...)
		}
		if shape == shapeWithWorkspaceAndLocation {
			b.Workspace.Location = &domain.WorkspaceLocation{}
			targets = append(targets, locationScanTargets(b.Workspace.Location)...)
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating booking rows", err)
	}

	if shape == shapeBare {
		return bookings, nil
	}

	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.WorkspaceID]; !ok {
			seen[b.WorkspaceID] = struct{}{}
			ids = append(ids, b.WorkspaceID)
		}
	}
	pics, err := loadPictures(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].Workspace.Pictures = pics[bookings[i].WorkspaceID]
	}
	return bookings, nil
}

func (r *PgxBookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return r.listBookings(ctx, shapeBare, "")
}

func (r *PgxBookingRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.listBookings(ctx, shapeWithWorkspace, `WHERE b.user_id = $1`, userID)
}

func (r *PgxBookingRepository) ListBookingsByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return r.listBookings(ctx, shapeWithWorkspaceAndLocation, `WHERE l.user_id = $1`, ownerID)
}

func (r *PgxBookingRepository) ListBookingsByWorkspace(ctx context.Context, workspaceID int64) ([]domain.Booking, error) {
	return r.listBookings(ctx, shapeBare, `WHERE b.workspace_id = $1`, workspaceID)
}

// CreateBookingWithLock serializes bookings per workspace with a row lock before the overlap check.
func (r *PgxBookingRepository) CreateBookingWithLock(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var isActive bool
	err = tx.QueryRow(ctx,
		`SELECT is_active FROM workspaces WHERE workspace_id = $1 FOR UPDATE;`,
		booking.WorkspaceID,
	).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("workspace not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to lock workspace", err)
	}
	if !isActive {
		return apperrors.NewValidationFailedError("workspace is not available for booking")
	}

	var overlapping bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE workspace_id = $1 AND start_date <= $3 AND end_date >= $2
		);`,
		booking.WorkspaceID, booking.StartDate, booking.EndDate,
	).Scan(&overlapping)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to check booking overlap", err)
	}
	if overlapping {
		return apperrors.NewConflictError("workspace is already booked for the selected dates")
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (start_date, end_date, user_id, workspace_id)
		VALUES ($1, $2, $3, $4)
		RETURNING booking_id, created_at, updated_at;`,
		booking.StartDate, booking.EndDate, booking.UserID, booking.WorkspaceID,
	).Scan(&booking.BookingID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return translatePgError(err, "failed to save booking")
	}

	return r.Commit(ctx, tx)
}
