package pgsql

import (
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		LocationRepo:  newPgxLocationRepository(dbPool),
		BookingRepo:   newPgxBookingRepository(dbPool),
		FeatureRepo:   newPgxFeatureRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
