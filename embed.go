// Package plotmarket embeds assets that ship inside the binary.
package plotmarket

import "embed"

// Migrations holds the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
