package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/core/services"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type BookingServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockBookingRepository
	mockCache     *MockBlockedDaysCache
	mockPublisher *MockEventPublisher
	service       portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBookingRepository)
	suite.mockCache = new(MockBlockedDaysCache)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewBookingService(suite.mockRepo,
		services.WithBlockedDaysCache(suite.mockCache),
		services.WithEventPublisher(suite.mockPublisher),
	)
}

func (suite *BookingServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (suite *BookingServiceTestSuite) TestListAllBookings_Success() {
	ctx := context.Background()
	expected := []domain.Booking{{BookingID: 1}, {BookingID: 2}}
	suite.mockRepo.On("ListBookings", ctx).Return(expected, nil).Once()

	bookings, err := suite.service.ListAllBookings(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, bookings)
}

func (suite *BookingServiceTestSuite) TestListAllBookings_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookings", ctx).Return(nil, assert.AnError).Once()

	bookings, err := suite.service.ListAllBookings(ctx)

	suite.Require().Error(err)
	suite.Nil(bookings)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BookingServiceTestSuite) TestListOwnerBookings_PassesOwnerID() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookingsByOwner", ctx, int64(2)).Return([]domain.Booking{}, nil).Once()

	bookings, err := suite.service.ListOwnerBookings(ctx, 2)

	suite.Require().NoError(err)
	suite.Empty(bookings)
}

func (suite *BookingServiceTestSuite) TestListUserBookings_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookingsByUser", ctx, int64(5)).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListUserBookings(ctx, 5)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *BookingServiceTestSuite) TestGetBlockedDays_CacheHit() {
	ctx := context.Background()
	cached := []string{"03/01/2024"}
	suite.mockCache.On("Get", ctx, int64(9)).Return(cached, true, nil).Once()

	days, err := suite.service.GetBlockedDays(ctx, 9)

	suite.Require().NoError(err)
	suite.Equal(cached, days)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBookingsByWorkspace", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestGetBlockedDays_CacheMissDerivesInclusiveRange() {
	ctx := context.Background()
	bookings := []domain.Booking{
		{BookingID: 1, WorkspaceID: 9, StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 2)},
		{BookingID: 2, WorkspaceID: 9, StartDate: day(2024, 3, 2), EndDate: day(2024, 3, 2)},
	}
	expected := []string{"03/01/2024", "03/02/2024"}
	suite.mockCache.On("Get", ctx, int64(9)).Return(nil, false, nil).Once()
	suite.mockRepo.On("ListBookingsByWorkspace", ctx, int64(9)).Return(bookings, nil).Once()
	suite.mockCache.On("Set", ctx, int64(9), expected).Return(nil).Once()

	days, err := suite.service.GetBlockedDays(ctx, 9)

	suite.Require().NoError(err)
	suite.Equal(expected, days)
}

func (suite *BookingServiceTestSuite) TestGetBlockedDays_CacheFailureFallsBackToStore() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, int64(9)).Return(nil, false, assert.AnError).Once()
	suite.mockRepo.On("ListBookingsByWorkspace", ctx, int64(9)).Return([]domain.Booking{}, nil).Once()
	suite.mockCache.On("Set", ctx, int64(9), []string{}).Return(assert.AnError).Once()

	days, err := suite.service.GetBlockedDays(ctx, 9)

	suite.Require().NoError(err)
	suite.Empty(days)
}

func (suite *BookingServiceTestSuite) TestGetBlockedDays_WithoutCache() {
	ctx := context.Background()
	service := services.NewBookingService(suite.mockRepo)
	bookings := []domain.Booking{{StartDate: day(2024, 2, 28), EndDate: day(2024, 3, 1)}}
	suite.mockRepo.On("ListBookingsByWorkspace", ctx, int64(3)).Return(bookings, nil).Once()

	days, err := service.GetBlockedDays(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal([]string{"02/28/2024", "02/29/2024", "03/01/2024"}, days)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{WorkspaceID: 9, StartDate: "2024-03-01", EndDate: "2024-03-03"}

	suite.mockRepo.On("CreateBookingWithLock", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).BookingID = 42
		}).
		Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, int64(9)).Return(nil).Once()
	suite.mockPublisher.On("PublishBookingCreated", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.BookingID == 42 && b.UserID == 4
	})).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, 4, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.Equal(int64(42), booking.BookingID)
	suite.Equal(day(2024, 3, 1), booking.StartDate)
	suite.Equal(day(2024, 3, 3), booking.EndDate)
	suite.Equal(3, booking.Days())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_PublishFailureIsNotFatal() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{WorkspaceID: 9, StartDate: "2024-03-01", EndDate: "2024-03-01"}
	suite.mockRepo.On("CreateBookingWithLock", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	suite.mockCache.On("Invalidate", ctx, int64(9)).Return(assert.AnError).Once()
	suite.mockPublisher.On("PublishBookingCreated", ctx, mock.AnythingOfType("domain.Booking")).Return(assert.AnError).Once()

	booking, err := suite.service.CreateBooking(ctx, 4, req)

	suite.Require().NoError(err)
	suite.NotNil(booking)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_InvalidDates() {
	ctx := context.Background()
	cases := []dto.CreateBookingRequest{
		{WorkspaceID: 9, StartDate: "03/01/2024", EndDate: "2024-03-02"},
		{WorkspaceID: 9, StartDate: "2024-03-01", EndDate: "tomorrow"},
		{WorkspaceID: 9, StartDate: "2024-03-05", EndDate: "2024-03-01"},
	}
	for _, req := range cases {
		booking, err := suite.service.CreateBooking(ctx, 4, req)
		suite.Nil(booking)
		suite.ErrorIs(err, apperrors.ErrValidation, "request %+v", req)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBookingWithLock", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_Overlap() {
	ctx := context.Background()
	req := dto.CreateBookingRequest{WorkspaceID: 9, StartDate: "2024-03-01", EndDate: "2024-03-02"}
	suite.mockRepo.On("CreateBookingWithLock", ctx, mock.AnythingOfType("*domain.Booking")).
		Return(apperrors.NewConflictError("workspace already booked")).Once()

	booking, err := suite.service.CreateBooking(ctx, 4, req)

	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *BookingServiceTestSuite) TestExportOwnerBookings() {
	ctx := context.Background()
	ws := &domain.Workspace{
		WorkspaceID: 9,
		Name:        "Desk A",
		DailyRate:   decimal.RequireFromString("25.50"),
		Location:    &domain.WorkspaceLocation{FullAddress: "1 King St, Toronto, ON M5H 1A1, Canada"},
	}
	bookings := []domain.Booking{
		{BookingID: 7, UserID: 4, WorkspaceID: 9, StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 2), Workspace: ws},
	}
	suite.mockRepo.On("ListBookingsByOwner", ctx, int64(2)).Return(bookings, nil).Once()

	data, err := suite.service.ExportOwnerBookings(ctx, 2)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Booking ID", rows[0][0])
	suite.Equal("Total", rows[0][8])
	suite.Equal("7", rows[1][0])
	suite.Equal("Desk A", rows[1][1])
	suite.Equal("1 King St, Toronto, ON M5H 1A1, Canada", rows[1][2])
	suite.Equal("2024-03-01", rows[1][4])
	suite.Equal("2", rows[1][6])
	suite.Equal("51", rows[1][8])
}

func (suite *BookingServiceTestSuite) TestExportOwnerBookings_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookingsByOwner", ctx, int64(2)).Return(nil, assert.AnError).Once()

	data, err := suite.service.ExportOwnerBookings(ctx, 2)

	suite.Nil(data)
	suite.ErrorIs(err, assert.AnError)
}
