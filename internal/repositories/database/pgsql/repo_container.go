package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wishinsured/fx_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PreferenceRepo:   newPgxPreferenceRepository(dbPool),
		ProfileValueRepo: newPgxProfileValueRepository(dbPool),
		RateSnapshotRepo: newPgxRateSnapshotRepository(dbPool),
	}
}
