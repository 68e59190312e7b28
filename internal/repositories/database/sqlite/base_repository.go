package sqlite

import "database/sql"

// BaseRepository provides the shared database handle for all sqlite
// repositories.
type BaseRepository struct {
	DB *sql.DB
}
