package services

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// GetWorkspace retrieves a workspace with location, pictures and feature states.
	GetWorkspace(ctx context.Context, workspaceID int64) (*domain.Workspace, error)

	// ListActiveWorkspaces retrieves all active workspaces.
	ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace creates a workspace at one of the owner's locations.
	CreateWorkspace(ctx context.Context, ownerID int64, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)

	// UpdateWorkspace applies a flattened editor submission in one transaction.
	// Only the owner of the workspace's location may update it.
	UpdateWorkspace(ctx context.Context, requesterID int64, submission domain.WorkspaceSubmission) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
}

// WorkspaceEditorSvc builds and saves the workspace editor form.
type WorkspaceEditorSvc interface {
	// LoadEditor aggregates the workspace, its owner's locations, the feature overlay and
	// the booked days. Failures of the secondary sections are recorded on the form.
	LoadEditor(ctx context.Context, workspaceID int64) (*domain.WorkspaceEditorForm, error)

	// SubmitEditor strips the UI-only state from form and persists the rest.
	SubmitEditor(ctx context.Context, requesterID int64, form domain.WorkspaceEditorForm) error
}
