package pgsql_test

import (
	"context"
	"errors"
	"os"
	"testing"

	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	"github.com/Sachin796/Worktopia/internal/repositories/database/pgsql"
	"github.com/Sachin796/Worktopia/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// testDatabaseEnv names a disposable Postgres database; the suite is skipped without it.
const testDatabaseEnv = "WORKTOPIA_TEST_PGSQL_URL"

type BookingRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo portsrepo.BookingRepositoryWithTx

	ownerA, ownerB, renter1, renter2 int64
	wsA, wsB                         int64
}

func TestBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}

func (s *BookingRepositoryTestSuite) SetupSuite() {
	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		s.T().Skip(testDatabaseEnv + " not set")
	}

	m, err := migrate.New("file://../../../../migrations", url)
	s.Require().NoError(err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.Require().NoError(err)
	}
	_, _ = m.Close()

	s.pool, err = database.NewPgxPool(context.Background(), url, true)
	s.Require().NoError(err)
	s.repo = pgsql.NewRepositoryProvider(s.pool).BookingRepo
}

func (s *BookingRepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *BookingRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, `TRUNCATE bookings, workspace_features, workspace_pics, workspaces, workspace_locations, users RESTART IDENTITY CASCADE;`)
	s.Require().NoError(err)

	s.ownerA = s.insertUser("owner-a", "OWNER")
	s.ownerB = s.insertUser("owner-b", "OWNER")
	s.renter1 = s.insertUser("renter-1", "RENTER")
	s.renter2 = s.insertUser("renter-2", "RENTER")

	s.wsA = s.insertWorkspace("Desk A", s.insertLocation(s.ownerA, "1 King St W, Toronto, ON M5H 1A1, Canada"))
	s.wsB = s.insertWorkspace("Desk B", s.insertLocation(s.ownerB, "2 Bank St, Ottawa, ON K1P 5N4, Canada"))

	_, err = s.pool.Exec(ctx, `INSERT INTO workspace_pics (workspace_id, image_path) VALUES ($1, 'a.png');`, s.wsA)
	s.Require().NoError(err)

	s.insertBooking(s.renter1, s.wsA, "2024-05-01", "2024-05-02")
	s.insertBooking(s.renter2, s.wsB, "2024-05-03", "2024-05-04")
	s.insertBooking(s.renter1, s.wsB, "2024-05-10", "2024-05-10")
}

func (s *BookingRepositoryTestSuite) insertUser(username, role string) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(),
		`INSERT INTO users (username, role) VALUES ($1, $2) RETURNING user_id;`, username, role).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *BookingRepositoryTestSuite) insertLocation(ownerID int64, fullAddress string) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(),
		`INSERT INTO workspace_locations (addr1, city, province, postal_code, full_address, user_id)
		 VALUES ('addr', 'city', 'ON', 'A1A 1A1', $1, $2) RETURNING location_id;`, fullAddress, ownerID).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *BookingRepositoryTestSuite) insertWorkspace(name string, locationID int64) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(),
		`INSERT INTO workspaces (name, rental_price, location_id) VALUES ($1, 25.50, $2) RETURNING workspace_id;`,
		name, locationID).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *BookingRepositoryTestSuite) insertBooking(userID, workspaceID int64, start, end string) {
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO bookings (start_date, end_date, user_id, workspace_id) VALUES ($1, $2, $3, $4);`,
		start, end, userID, workspaceID)
	s.Require().NoError(err)
}

func (s *BookingRepositoryTestSuite) TestListBookingsByUser_OnlyThatRenter() {
	bookings, err := s.repo.ListBookingsByUser(context.Background(), s.renter1)

	s.Require().NoError(err)
	s.Require().Len(bookings, 2)
	for _, b := range bookings {
		s.Equal(s.renter1, b.UserID)
		s.Require().NotNil(b.Workspace)
		s.Equal(b.WorkspaceID, b.Workspace.WorkspaceID)
	}
	s.Equal(s.wsA, bookings[0].WorkspaceID)
	s.Require().Len(bookings[0].Workspace.Pictures, 1)
	s.Equal("a.png", bookings[0].Workspace.Pictures[0].ImagePath)
	s.Empty(bookings[1].Workspace.Pictures)
}

func (s *BookingRepositoryTestSuite) TestListBookingsByOwner_FiltersByLocationOwner() {
	ctx := context.Background()

	bookings, err := s.repo.ListBookingsByOwner(ctx, s.ownerA)
	s.Require().NoError(err)
	s.Require().Len(bookings, 1)
	s.Equal(s.wsA, bookings[0].WorkspaceID)
	s.Require().NotNil(bookings[0].Workspace.Location)
	s.Equal(s.ownerA, bookings[0].Workspace.Location.OwnerID)

	bookings, err = s.repo.ListBookingsByOwner(ctx, s.ownerB)
	s.Require().NoError(err)
	s.Require().Len(bookings, 2)
	for _, b := range bookings {
		s.Equal(s.wsB, b.WorkspaceID)
		s.Equal(s.ownerB, b.Workspace.Location.OwnerID)
	}
}

func (s *BookingRepositoryTestSuite) TestListBookingsByOwner_NoLocations() {
	bookings, err := s.repo.ListBookingsByOwner(context.Background(), s.renter1)

	s.Require().NoError(err)
	s.NotNil(bookings)
	s.Empty(bookings)
}
