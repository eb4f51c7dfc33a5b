// Package web provides embedded static assets for the site. Page chrome
// comes from the Tailwind CDN; this holds the handful of overrides served
// at /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var StaticFS embed.FS

// Static returns the static asset tree rooted at its contents, ready to be
// served by an http.FileServer.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
