package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
)

type workspaceEditorService struct {
	BaseService
	workspaces portssvc.WorkspaceSvcFacade
	locations  portssvc.LocationSvcFacade
	features   portssvc.FeatureSvcFacade
	bookings   portssvc.BookingReaderSvc
}

// NewWorkspaceEditorService creates the editor view-model service.
func NewWorkspaceEditorService(
	workspaces portssvc.WorkspaceSvcFacade,
	locations portssvc.LocationSvcFacade,
	features portssvc.FeatureSvcFacade,
	bookings portssvc.BookingReaderSvc,
) portssvc.WorkspaceEditorSvc {
	return &workspaceEditorService{
		workspaces: workspaces,
		locations:  locations,
		features:   features,
		bookings:   bookings,
	}
}

var _ portssvc.WorkspaceEditorSvc = (*workspaceEditorService)(nil)

// LoadEditor fetches the workspace first, then its dependent sections in parallel.
// A failed section is logged and recorded; the others still complete.
func (s *workspaceEditorService) LoadEditor(ctx context.Context, workspaceID int64) (*domain.WorkspaceEditorForm, error) {
	ws, err := s.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	form := &domain.WorkspaceEditorForm{
		WorkspaceSubmission: domain.WorkspaceSubmission{
			WorkspaceID:   ws.WorkspaceID,
			Name:          ws.Name,
			Description:   ws.Description,
			LocationID:    ws.LocationID,
			Occupancy:     ws.Occupancy,
			Dimensions:    ws.Dimensions,
			DailyRate:     ws.DailyRate,
			ImageFileName: ws.FirstPicture(),
			IsActive:      ws.IsActive,
			Locations:     []domain.LocationOption{},
			Features:      []domain.FeatureToggle{},
			BookedDates:   []string{},
		},
		EditorUIState: domain.NewEditorUIState(),
		SectionErrors: map[domain.EditorSection]string{},
	}
	if ws.Location != nil {
		form.LocationName = ws.Location.FullAddress
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	fail := func(section domain.EditorSection, err error) {
		s.LogError(ctx, err, "Failed to load editor section",
			slog.String("section", string(section)),
			slog.Int64("workspace_id", workspaceID))
		mu.Lock()
		form.SectionErrors[section] = err.Error()
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		ownerID, ok := ws.OwnerID()
		if !ok {
			fail(domain.SectionLocations, apperrors.NewNotFoundError("workspace has no location"))
			return
		}
		locs, err := s.locations.ListOwnerLocations(ctx, ownerID)
		if err != nil {
			fail(domain.SectionLocations, err)
			return
		}
		options := make([]domain.LocationOption, len(locs))
		for i, l := range locs {
			options[i] = domain.LocationOption{LocationID: l.LocationID, FullAddress: l.FullAddress}
		}
		form.Locations = options
	}()
	go func() {
		defer wg.Done()
		catalog, err := s.features.ListFeatures(ctx)
		if err != nil {
			fail(domain.SectionFeatures, err)
			return
		}
		form.Features = domain.OverlayFeatures(catalog, ws.Features)
	}()
	go func() {
		defer wg.Done()
		days, err := s.bookings.GetBlockedDays(ctx, workspaceID)
		if err != nil {
			fail(domain.SectionBookedDates, err)
			return
		}
		form.BookedDates = days
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(form.SectionErrors) == 0 {
		form.SectionErrors = nil
	}
	return form, nil
}

func (s *workspaceEditorService) SubmitEditor(ctx context.Context, requesterID int64, form domain.WorkspaceEditorForm) error {
	if form.WorkspaceID <= 0 {
		return apperrors.NewValidationFailedError("workspaceID is required")
	}
	return s.workspaces.UpdateWorkspace(ctx, requesterID, form.Submission())
}
