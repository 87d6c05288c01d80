package services_test

import (
	"context"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTxManager satisfies TransactionManager for repositories that own their transactions.
type MockTxManager struct{}

func (MockTxManager) Begin(context.Context) (pgx.Tx, error)  { return nil, nil }
func (MockTxManager) Commit(context.Context, pgx.Tx) error   { return nil }
func (MockTxManager) Rollback(context.Context, pgx.Tx) error { return nil }

// --- Workspace repository ---

type MockWorkspaceRepository struct {
	mock.Mock
	MockTxManager
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID int64) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListActiveWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListFeatureStates(ctx context.Context, workspaceID int64) ([]domain.WorkspaceFeatureState, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceFeatureState), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace *domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace, features []domain.WorkspaceFeatureState, imagePath string) error {
	args := m.Called(ctx, workspace, features, imagePath)
	return args.Error(0)
}

// --- Location repository ---

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.WorkspaceLocation, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceLocation), args.Error(1)
}

func (m *MockLocationRepository) ListLocationsByOwner(ctx context.Context, ownerID int64) ([]domain.WorkspaceLocation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceLocation), args.Error(1)
}

func (m *MockLocationRepository) SaveLocation(ctx context.Context, location *domain.WorkspaceLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, location domain.WorkspaceLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

// --- Booking repository ---

type MockBookingRepository struct {
	mock.Mock
	MockTxManager
}

func (m *MockBookingRepository) bookings(args mock.Arguments) ([]domain.Booking, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx))
}

func (m *MockBookingRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, userID))
}

func (m *MockBookingRepository) ListBookingsByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, ownerID))
}

func (m *MockBookingRepository) ListBookingsByWorkspace(ctx context.Context, workspaceID int64) ([]domain.Booking, error) {
	return m.bookings(m.Called(ctx, workspaceID))
}

func (m *MockBookingRepository) CreateBookingWithLock(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// --- Feature repository ---

type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

// --- User repository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Adapters ---

type MockBlockedDaysCache struct {
	mock.Mock
}

func (m *MockBlockedDaysCache) Get(ctx context.Context, workspaceID int64) ([]string, bool, error) {
	args := m.Called(ctx, workspaceID)
	var days []string
	if args.Get(0) != nil {
		days = args.Get(0).([]string)
	}
	return days, args.Bool(1), args.Error(2)
}

func (m *MockBlockedDaysCache) Set(ctx context.Context, workspaceID int64, days []string) error {
	args := m.Called(ctx, workspaceID, days)
	return args.Error(0)
}

func (m *MockBlockedDaysCache) Invalidate(ctx context.Context, workspaceID int64) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingCreated(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}
