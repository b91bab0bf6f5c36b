// Package migrations embeds the versioned SQL schema for the todos database.
// Files are applied in lexical order by database.Migrate.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
