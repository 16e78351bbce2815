// Package migrations embeds the ordered DDL applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
