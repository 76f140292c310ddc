// Package uptime holds assets shared by the uptime monitor binaries, such as the
// embedded database migrations.
package uptime

import "embed"

// Migrations contains goose migrations for every supported SQL dialect, one
// directory per dialect under migrations/.
//
//go:embed migrations
var Migrations embed.FS
