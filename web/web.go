// Package web embeds the static single-page frontend served at the root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded static asset tree rooted at its contents
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
