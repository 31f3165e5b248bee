// Package handi holds assets shared by the binaries of the module.
package handi

import "embed"

// Migrations contains the goose SQL migrations of the PostgreSQL storage.
//
//go:embed migrations/*.sql
var Migrations embed.FS
