package migrations

import "embed"

// FS contains embedded SQLite migrations for the users store.
//
//go:embed *.sql
var FS embed.FS
