// Package migrations embeds the goose schema migrations for every supported
// SQL driver. Each driver has its own directory.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql mysql/*.sql
var Migrations embed.FS
