// Package journal holds assets shared by the binaries of the journal service.
package journal

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
