// Package migrations embeds the goose SQL migrations so they can be applied
// at startup and from tests without shipping files next to the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
