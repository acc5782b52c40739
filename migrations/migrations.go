// Package migrations embeds the versioned SQL schema migrations so the
// binary can initialize and upgrade a database without shipping loose files.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
