package handlers_test

import (
	"context"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/Sachin796/Worktopia/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) bookings(args mock.Arguments) ([]domain.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx))
}
func (m *MockBookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, userID))
}
func (m *MockBookingService) ListOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID))
}
func (m *MockBookingService) ListWorkspaceBookings(ctx context.Context, workspaceID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, workspaceID))
}
func (m *MockBookingService) GetBlockedDays(ctx context.Context, workspaceID int64) ([]string, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockBookingService) CreateBooking(ctx context.Context, renterID int64, req dto.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, renterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ExportOwnerBookings(ctx context.Context, ownerID int64) ([]byte, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock WorkspaceService ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) GetWorkspace(ctx context.Context, workspaceID int64) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) CreateWorkspace(ctx context.Context, ownerID int64, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) UpdateWorkspace(ctx context.Context, requesterID int64, submission domain.WorkspaceSubmission) error {
	return m.Called(ctx, requesterID, submission).Error(0)
}

// --- Mock SearchService ---
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) GetParams(ctx context.Context, session string) (map[string]string, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
func (m *MockSearchService) UpdateParam(ctx context.Context, session, key, value string) error {
	return m.Called(ctx, session, key, value).Error(0)
}
func (m *MockSearchService) SubmitSearch(ctx context.Context, session string, values map[string]string) (*domain.SearchParams, error) {
	args := m.Called(ctx, session, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchParams), args.Error(1)
}
func (m *MockSearchService) Review(ctx context.Context, session string, workspaceID int64) (*domain.WorkspaceReview, error) {
	args := m.Called(ctx, session, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceReview), args.Error(1)
}
func (m *MockSearchService) RememberUser(ctx context.Context, session string, user *domain.User) error {
	return m.Called(ctx, session, user).Error(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return m.user(m.Called(ctx, userID))
}
func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return m.user(m.Called(ctx, req))
}
func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, email, name string, role domain.UserRole) (*domain.User, error) {
	return m.user(m.Called(ctx, email, name, role))
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	return m.user(m.Called(ctx, username, password))
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
