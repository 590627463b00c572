// Package migrations embeds the goose SQL migrations so that cmd/migrate and
// integration tests apply the same schema without depending on the working
// directory.
package migrations

import "embed"

// FS contains the goose migrations at its root.
//
//go:embed *.sql
var FS embed.FS
