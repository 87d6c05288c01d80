package repositories

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a workspace with its location, pictures and feature states.
	FindWorkspaceByID(ctx context.Context, workspaceID int64) (*domain.Workspace, error)

	// ListActiveWorkspaces retrieves every active workspace with its location and pictures.
	ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// ListFeatureStates retrieves the per-feature status rows of a workspace.
	ListFeatureStates(ctx context.Context, workspaceID int64) ([]domain.WorkspaceFeatureState, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace, its optional picture and its feature states, and sets its ID.
	SaveWorkspace(ctx context.Context, workspace *domain.Workspace) error

	// UpdateWorkspace rewrites the workspace fields, upserts its feature states and, when
	// imagePath is not empty, replaces its picture. All writes happen in one transaction.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace, features []domain.WorkspaceFeatureState, imagePath string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}

// WorkspaceRepositoryWithTx extends WorkspaceRepositoryFacade with transaction capabilities
type WorkspaceRepositoryWithTx interface {
	WorkspaceRepositoryFacade
	TransactionManager
}
