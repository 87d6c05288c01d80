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

type PgxLocationRepository struct {
	db *pgxpool.Pool
}

func newPgxLocationRepository(db *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{db: db}
}

var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.WorkspaceLocation, error) {
	query := `SELECT` + locationColumns + ` FROM workspace_locations l WHERE l.location_id = $1;`
	var loc domain.WorkspaceLocation
	err := r.db.QueryRow(ctx, query, locationID).Scan(locationScanTargets(&loc)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find location", err)
	}
	return &loc, nil
}

func (r *PgxLocationRepository) ListLocationsByOwner(ctx context.Context, ownerID int64) ([]domain.WorkspaceLocation, error) {
	query := `
		SELECT DISTINCT ON (l.full_address)` + locationColumns + `
		FROM workspace_locations l
		WHERE l.user_id = $1
		ORDER BY l.full_address, l.location_id;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query owner locations", err)
	}
	defer rows.Close()

	locations := []domain.WorkspaceLocation{}
	for rows.Next() {
		var loc domain.WorkspaceLocation
		if err := rows.Scan(locationScanTargets(&loc)...); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan location row", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating location rows", err)
	}
	return locations, nil
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location *domain.WorkspaceLocation) error {
	query := `
		INSERT INTO workspace_locations (addr1, addr2, city, province, postal_code, country, full_address, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING location_id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.Addr1,
		location.Addr2,
		location.City,
		location.Province,
		location.PostalCode,
		location.Country,
		location.FullAddress,
		location.OwnerID,
	).Scan(&location.LocationID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return translatePgError(err, "failed to save location")
	}
	return nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.WorkspaceLocation) error {
	query := `
		UPDATE workspace_locations
		SET addr1 = $1, addr2 = $2, city = $3, province = $4, postal_code = $5, country = $6,
		    full_address = $7, updated_at = NOW()
		WHERE location_id = $8 AND user_id = $9;
	`
	tag, err := r.db.Exec(ctx, query,
		location.Addr1,
		location.Addr2,
		location.City,
		location.Province,
		location.PostalCode,
		location.Country,
		location.FullAddress,
		location.LocationID,
		location.OwnerID,
	)
	if err != nil {
		return translatePgError(err, "failed to update location")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("location not found")
	}
	return nil
}
