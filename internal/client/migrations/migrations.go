// Package migrations embeds the local SQLite schema used by the CLI.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
