package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkspaceEditorServiceTestSuite struct {
	suite.Suite
	wsRepo      *MockWorkspaceRepository
	locRepo     *MockLocationRepository
	featureRepo *MockFeatureRepository
	bookingRepo *MockBookingRepository
	service     portssvc.WorkspaceEditorSvc
}

func (suite *WorkspaceEditorServiceTestSuite) SetupTest() {
	suite.wsRepo = new(MockWorkspaceRepository)
	suite.locRepo = new(MockLocationRepository)
	suite.featureRepo = new(MockFeatureRepository)
	suite.bookingRepo = new(MockBookingRepository)
	suite.service = services.NewWorkspaceEditorService(
		services.NewWorkspaceService(suite.wsRepo, suite.locRepo),
		services.NewLocationService(suite.locRepo),
		services.NewFeatureService(suite.featureRepo),
		services.NewBookingService(suite.bookingRepo),
	)
}

func (suite *WorkspaceEditorServiceTestSuite) TearDownTest() {
	suite.wsRepo.AssertExpectations(suite.T())
	suite.locRepo.AssertExpectations(suite.T())
	suite.featureRepo.AssertExpectations(suite.T())
	suite.bookingRepo.AssertExpectations(suite.T())
}

func TestWorkspaceEditorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceEditorServiceTestSuite))
}

var catalog = []domain.Feature{{FeatureID: 1, Name: "Wi-Fi"}, {FeatureID: 2, Name: "Parking"}}

func (suite *WorkspaceEditorServiceTestSuite) TestLoadEditor_AllSections() {
	ctx := context.Background()
	suite.wsRepo.On("FindWorkspaceByID", ctx, int64(11)).Return(ownedWorkspace(), nil).Once()
	suite.locRepo.On("ListLocationsByOwner", ctx, ownerID).Return([]domain.WorkspaceLocation{
		{LocationID: 5, FullAddress: "1 King St, Toronto, ON M5H 1A1, Canada"},
		{LocationID: 6, FullAddress: "2 Queen St, Toronto, ON M5H 2N2, Canada"},
	}, nil).Once()
	suite.featureRepo.On("ListFeatures", ctx).Return(catalog, nil).Once()
	suite.bookingRepo.On("ListBookingsByWorkspace", ctx, int64(11)).Return([]domain.Booking{
		{StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	form, err := suite.service.LoadEditor(ctx, 11)

	suite.Require().NoError(err)
	suite.Equal(int64(11), form.WorkspaceID)
	suite.Equal("Corner office", form.Name)
	suite.Equal("1 King St, Toronto, ON M5H 1A1, Canada", form.LocationName)
	suite.Equal("old.png", form.ImageFileName)
	suite.Len(form.Locations, 2)
	suite.Equal([]domain.FeatureToggle{
		{FeatureID: 1, Name: "Wi-Fi", Status: true},
		{FeatureID: 2, Name: "Parking", Status: false},
	}, form.Features)
	suite.Equal([]string{"03/01/2024", "03/02/2024"}, form.BookedDates)
	suite.Equal(domain.DefaultUploadMessage, form.Message)
	suite.Equal(domain.DefaultUploadMessage, form.DefaultMessage)
	suite.False(form.Uploading)
	suite.Nil(form.SectionErrors)
}

func (suite *WorkspaceEditorServiceTestSuite) TestLoadEditor_SectionFailureIsIsolated() {
	ctx := context.Background()
	suite.wsRepo.On("FindWorkspaceByID", ctx, int64(11)).Return(ownedWorkspace(), nil).Once()
	suite.locRepo.On("ListLocationsByOwner", ctx, ownerID).Return([]domain.WorkspaceLocation{{LocationID: 5}}, nil).Once()
	suite.featureRepo.On("ListFeatures", ctx).Return(nil, assert.AnError).Once()
	suite.bookingRepo.On("ListBookingsByWorkspace", ctx, int64(11)).Return(nil, assert.AnError).Once()

	form, err := suite.service.LoadEditor(ctx, 11)

	suite.Require().NoError(err)
	suite.Len(form.Locations, 1)
	suite.Empty(form.Features)
	suite.Empty(form.BookedDates)
	suite.Len(form.SectionErrors, 2)
	suite.Contains(form.SectionErrors, domain.SectionFeatures)
	suite.Contains(form.SectionErrors, domain.SectionBookedDates)
	suite.NotContains(form.SectionErrors, domain.SectionLocations)
}

func (suite *WorkspaceEditorServiceTestSuite) TestLoadEditor_WorkspaceNotFound() {
	ctx := context.Background()
	suite.wsRepo.On("FindWorkspaceByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	form, err := suite.service.LoadEditor(ctx, 404)

	suite.Nil(form)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WorkspaceEditorServiceTestSuite) TestSubmitEditor_StripsUIStateAndUpdates() {
	ctx := context.Background()
	selected := "desk.png"
	form := domain.WorkspaceEditorForm{
		WorkspaceSubmission: domain.WorkspaceSubmission{
			WorkspaceID:   11,
			Name:          "Corner office",
			LocationID:    5,
			ImageFileName: "desk.png",
			Features:      []domain.FeatureToggle{{FeatureID: 2, Name: "Parking", Status: true}},
		},
		EditorUIState: domain.EditorUIState{SelectedFile: &selected, Uploading: true, Message: "Uploading..."},
	}
	suite.wsRepo.On("FindWorkspaceByID", ctx, int64(11)).Return(ownedWorkspace(), nil).Once()
	suite.wsRepo.On("UpdateWorkspace", ctx, mock.AnythingOfType("domain.Workspace"),
		[]domain.WorkspaceFeatureState{{WorkspaceID: 11, FeatureID: 2, Name: "Parking", Status: true}},
		"desk.png",
	).Return(nil).Once()

	suite.Require().NoError(suite.service.SubmitEditor(ctx, ownerID, form))
}

func (suite *WorkspaceEditorServiceTestSuite) TestSubmitEditor_MissingID() {
	err := suite.service.SubmitEditor(context.Background(), ownerID, domain.WorkspaceEditorForm{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}
