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

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryWithTx {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryWithTx = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `
	w.workspace_id, w.name, w.description, w.no_occupants, w.dimension, w.rental_price,
	w.is_active, w.location_id, w.created_at, w.updated_at`

const locationColumns = `
	l.location_id, l.addr1, l.addr2, l.city, l.province, l.postal_code, l.country,
	l.full_address, l.user_id, l.created_at, l.updated_at`

var FULL_WORKSPACE_SELECT_QUERY = `SELECT` + workspaceColumns + `,` + locationColumns + `
FROM workspaces w
JOIN workspace_locations l ON l.location_id = w.location_id
`

func workspaceScanTargets(w *domain.Workspace) []any {
	return []any{
		&w.WorkspaceID, &w.Name, &w.Description, &w.Occupancy, &w.Dimensions, &w.DailyRate,
		&w.IsActive, &w.LocationID, &w.CreatedAt, &w.UpdatedAt,
	}
}

func locationScanTargets(l *domain.WorkspaceLocation) []any {
	return []any{
		&l.LocationID, &l.Addr1, &l.Addr2, &l.City, &l.Province, &l.PostalCode, &l.Country,
		&l.FullAddress, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt,
	}
}

// getWorkspaces runs the full select with a filter and attaches locations and pictures.
func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	rows, err := r.Pool.Query(ctx, FULL_WORKSPACE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workspaces", err)
	}
	defer rows.Close()

	workspaces := []domain.Workspace{}
	for rows.Next() {
		var w domain.Workspace
		loc := &domain.WorkspaceLocation{}
		if err := rows.Scan(append(workspaceScanTargets(&w), locationScanTargets(loc)...)...); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan workspace row", err)
		}
		w.Location = loc
		workspaces = append(workspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating workspace rows", err)
	}

	ids := make([]int64, len(workspaces))
	for i := range workspaces {
		ids[i] = workspaces[i].WorkspaceID
	}
	pics, err := loadPictures(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range workspaces {
		workspaces[i].Pictures = pics[workspaces[i].WorkspaceID]
	}
	return workspaces, nil
}

// loadPictures fetches the pictures of many workspaces in one query.
func loadPictures(ctx context.Context, q querier, workspaceIDs []int64) (map[int64][]domain.WorkspacePic, error) {
	out := make(map[int64][]domain.WorkspacePic, len(workspaceIDs))
	if len(workspaceIDs) == 0 {
		return out, nil
	}
	rows, err := q.Query(ctx, `
		SELECT pic_id, workspace_id, image_path
		FROM workspace_pics
		WHERE workspace_id = ANY($1)
		ORDER BY pic_id;`, workspaceIDs)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workspace pictures", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.WorkspacePic
		if err := rows.Scan(&p.PicID, &p.WorkspaceID, &p.ImagePath); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan workspace picture row", err)
		}
		out[p.WorkspaceID] = append(out[p.WorkspaceID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating workspace picture rows", err)
	}
	return out, nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID int64) (*domain.Workspace, error) {
	workspaces, err := r.getWorkspaces(ctx, `WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	ws := workspaces[0]
	states, err := r.ListFeatureStates(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	ws.Features = states
	return &ws, nil
}

func (r *PgxWorkspaceRepository) ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, `WHERE w.is_active = true ORDER BY w.workspace_id;`)
}

func (r *PgxWorkspaceRepository) ListFeatureStates(ctx context.Context, workspaceID int64) ([]domain.WorkspaceFeatureState, error) {
	query := `
		SELECT wf.workspace_id, wf.feature_id, f.name, wf.status
		FROM workspace_features wf
		JOIN features f ON f.feature_id = wf.feature_id
		WHERE wf.workspace_id = $1
		ORDER BY wf.feature_id;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query workspace features", err)
	}
	defer rows.Close()

	states, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkspaceFeatureState, error) {
		var s domain.WorkspaceFeatureState
		err := row.Scan(&s.WorkspaceID, &s.FeatureID, &s.Name, &s.Status)
		return s, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.WorkspaceFeatureState{}, nil
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect workspace feature rows", err)
	}
	return states, nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace *domain.Workspace) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO workspaces (name, description, no_occupants, dimension, rental_price, is_active, location_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING workspace_id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		workspace.Name,
		workspace.Description,
		workspace.Occupancy,
		workspace.Dimensions,
		workspace.DailyRate,
		workspace.IsActive,
		workspace.LocationID,
	).Scan(&workspace.WorkspaceID, &workspace.CreatedAt, &workspace.UpdatedAt)
	if err != nil {
		return translatePgError(err, "failed to save workspace")
	}

	for i := range workspace.Features {
		workspace.Features[i].WorkspaceID = workspace.WorkspaceID
	}
	if err := upsertFeatureStates(ctx, tx, workspace.Features); err != nil {
		return err
	}
	for i := range workspace.Pictures {
		pic := &workspace.Pictures[i]
		pic.WorkspaceID = workspace.WorkspaceID
		err := tx.QueryRow(ctx,
			`INSERT INTO workspace_pics (workspace_id, image_path) VALUES ($1, $2) RETURNING pic_id;`,
			pic.WorkspaceID, pic.ImagePath,
		).Scan(&pic.PicID)
		if err != nil {
			return translatePgError(err, "failed to save workspace picture")
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace, features []domain.WorkspaceFeatureState, imagePath string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // ignored once committed

	query := `
		UPDATE workspaces
		SET name = $1, description = $2, no_occupants = $3, dimension = $4, rental_price = $5,
		    is_active = $6, location_id = $7, updated_at = NOW()
		WHERE workspace_id = $8;
	`
	tag, err := tx.Exec(ctx, query,
		workspace.Name,
		workspace.Description,
		workspace.Occupancy,
		workspace.Dimensions,
		workspace.DailyRate,
		workspace.IsActive,
		workspace.LocationID,
		workspace.WorkspaceID,
	)
	if err != nil {
		return translatePgError(err, "failed to update workspace")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace not found")
	}

	if err := upsertFeatureStates(ctx, tx, features); err != nil {
		return err
	}

	if imagePath != "" {
		if _, err := tx.Exec(ctx, `DELETE FROM workspace_pics WHERE workspace_id = $1;`, workspace.WorkspaceID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to clear workspace pictures", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO workspace_pics (workspace_id, image_path) VALUES ($1, $2);`,
			workspace.WorkspaceID, imagePath,
		); err != nil {
			return translatePgError(err, "failed to save workspace picture")
		}
	}

	return r.Commit(ctx, tx)
}

// upsertFeatureStates writes all feature statuses in a single batch.
func upsertFeatureStates(ctx context.Context, tx pgx.Tx, states []domain.WorkspaceFeatureState) error {
	if len(states) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, s := range states {
		batch.Queue(`
			INSERT INTO workspace_features (workspace_id, feature_id, status)
			VALUES ($1, $2, $3)
			ON CONFLICT (workspace_id, feature_id) DO UPDATE SET status = EXCLUDED.status;`,
			s.WorkspaceID, s.FeatureID, s.Status)
	}
	br := tx.SendBatch(ctx, batch)
	for range states {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translatePgError(err, "failed to save workspace feature")
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to close feature batch", err)
	}
	return nil
}
