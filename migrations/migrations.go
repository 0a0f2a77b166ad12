// Package migrations embeds the SQL schema migrations for the catalog
// primary store.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
