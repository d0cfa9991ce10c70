// Package migrations embeds the goose SQL migrations that create and drop
// the adapter's four tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
