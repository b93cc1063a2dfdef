package assets

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed public
var public embed.FS

// Templates parses the page templates. The set is fixed at build time, so a parse
// failure is a programming error.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

// Public returns the static files served next to the page.
func Public() http.FileSystem {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}
