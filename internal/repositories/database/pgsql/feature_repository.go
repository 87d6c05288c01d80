package pgsql

import (
	"context"
	"net/http"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFeatureRepository struct {
	db *pgxpool.Pool
}

func newPgxFeatureRepository(db *pgxpool.Pool) portsrepo.FeatureRepositoryFacade {
	return &PgxFeatureRepository{db: db}
}

var _ portsrepo.FeatureRepositoryFacade = (*PgxFeatureRepository)(nil)

func (r *PgxFeatureRepository) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	rows, err := r.db.Query(ctx, `SELECT feature_id, name FROM features ORDER BY feature_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query features", err)
	}
	features, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Feature])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect feature rows", err)
	}
	return features, nil
}
