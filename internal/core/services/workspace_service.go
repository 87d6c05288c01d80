package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/shopspring/decimal"
)

// workspaceService handles workspace listings and their updates.
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryWithTx
	locationRepo  portsrepo.LocationRepositoryFacade
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(wr portsrepo.WorkspaceRepositoryWithTx, lr portsrepo.LocationRepositoryFacade) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		workspaceRepo: wr,
		locationRepo:  lr,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

func (s *workspaceService) GetWorkspace(ctx context.Context, workspaceID int64) (*domain.Workspace, error) {
	ws, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Workspace not found", slog.Int64("workspace_id", workspaceID))
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("workspace %d not found", workspaceID))
		}
		s.LogError(ctx, err, "Failed to find workspace", slog.Int64("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListActiveWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces")
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// ownedLocation loads a location and checks it belongs to ownerID.
func (s *workspaceService) ownedLocation(ctx context.Context, locationID, ownerID int64) (*domain.WorkspaceLocation, error) {
	loc, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("location %d does not exist", locationID))
		}
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	if loc.OwnerID != ownerID {
		s.LogWarn(ctx, "Location belongs to another owner", slog.Int64("location_id", locationID), slog.Int64("user_id", ownerID))
		return nil, apperrors.NewForbiddenError("location belongs to another owner")
	}
	return loc, nil
}

func validateWorkspaceFields(name string, occupancy int, rate decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationFailedError("name is required")
	}
	if occupancy < 0 {
		return apperrors.NewValidationFailedError("occupancy must not be negative")
	}
	if rate.IsNegative() {
		return apperrors.NewValidationFailedError("dailyRate must not be negative")
	}
	return nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, ownerID int64, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	if err := validateWorkspaceFields(req.Name, req.Occupancy, req.DailyRate); err != nil {
		return nil, err
	}
	loc, err := s.ownedLocation(ctx, req.LocationID, ownerID)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	ws := &domain.Workspace{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Occupancy:   req.Occupancy,
		Dimensions:  req.Dimensions,
		DailyRate:   req.DailyRate.Round(2),
		IsActive:    isActive,
		LocationID:  loc.LocationID,
		Location:    loc,
	}
	if req.ImageFileName != "" {
		ws.Pictures = []domain.WorkspacePic{{ImagePath: req.ImageFileName}}
	}
	for _, f := range req.Features {
		ws.Features = append(ws.Features, domain.WorkspaceFeatureState{FeatureID: f.FeatureID, Status: f.Status})
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, ws); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_name", ws.Name))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	s.LogInfo(ctx, "Workspace created", slog.Int64("workspace_id", ws.WorkspaceID), slog.Int64("owner_id", ownerID))
	return ws, nil
}

func (s *workspaceService) UpdateWorkspace(ctx context.Context, requesterID int64, sub domain.WorkspaceSubmission) error {
	current, err := s.GetWorkspace(ctx, sub.WorkspaceID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeWorkspaceOwner(ctx, current, requesterID); err != nil {
		return err
	}
	if err := validateWorkspaceFields(sub.Name, sub.Occupancy, sub.DailyRate); err != nil {
		return err
	}
	if sub.LocationID != current.LocationID {
		if _, err := s.ownedLocation(ctx, sub.LocationID, requesterID); err != nil {
			return err
		}
	}

	updated := *current
	updated.Name = strings.TrimSpace(sub.Name)
	updated.Description = sub.Description
	updated.Occupancy = sub.Occupancy
	updated.Dimensions = sub.Dimensions
	updated.DailyRate = sub.DailyRate.Round(2)
	updated.IsActive = sub.IsActive
	updated.LocationID = sub.LocationID

	states := make([]domain.WorkspaceFeatureState, 0, len(sub.Features))
	for _, f := range sub.Features {
		states = append(states, domain.WorkspaceFeatureState{
			WorkspaceID: sub.WorkspaceID,
			FeatureID:   f.FeatureID,
			Name:        f.Name,
			Status:      f.Status,
		})
	}

	image := sub.ImageFileName
	if image == current.FirstPicture() {
		image = ""
	}

	if err := s.workspaceRepo.UpdateWorkspace(ctx, updated, states, image); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.Int64("workspace_id", sub.WorkspaceID))
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	s.LogInfo(ctx, "Workspace updated", slog.Int64("workspace_id", sub.WorkspaceID))
	return nil
}
