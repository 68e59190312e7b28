package sqlite

import (
	"database/sql"

	portsrepo "github.com/wishinsured/fx_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every sqlite repository onto one database
// handle, creating the schema first.
func NewRepositoryProvider(db *sql.DB) (portsrepo.RepositoryProvider, error) {
	if err := EnsureSchema(db); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		PreferenceRepo:   newSQLitePreferenceRepository(db),
		ProfileValueRepo: newSQLiteProfileValueRepository(db),
		RateSnapshotRepo: newSQLiteRateSnapshotRepository(db),
	}, nil
}
