// Package web holds the server-rendered templates, embedded so the
// binary (and the tests) never depend on the working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded template set for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
