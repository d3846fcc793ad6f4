// Package web embeds the static single-page client that talks to the API:
// login/register, generation requests, and client-side rendering of the
// generated markup.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// Static returns the embedded client rooted at the directory holding
// index.html, ready to serve with http.FS.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
