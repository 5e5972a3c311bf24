// Package migrations embebe el esquema y la semilla del catálogo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
