// Package travel holds the assets shared by the binaries of this module.
package travel

import "embed"

// Migrations are the goose migrations of the PostgreSQL schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
