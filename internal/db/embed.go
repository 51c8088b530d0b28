package db

import "embed"

// migrationsFS holds the goose SQL migrations bundled into the binary.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
