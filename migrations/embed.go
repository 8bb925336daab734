// Package migrations embeds the goose SQL migrations for the postgres
// snapshot store. repo.Open applies them at startup and the integration
// tests apply them in TestMain.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path
// at runtime.
//
//go:embed *.sql
var FS embed.FS
