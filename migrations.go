// Package autobuilder holds assets embedded into the service binary.
package autobuilder

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Version is reported by the API root and health details.
const Version = "0.1.0"
