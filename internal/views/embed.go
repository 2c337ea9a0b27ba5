// Package views holds the storefront templates, embedded so the binary is
// self-contained in production.
package views

import "embed"

//go:embed *.html
var FS embed.FS
