package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for the gin HTML
// renderer.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("January 2, 2006 15:04")
		},
		"add": func(a, b int) int {
			return a + b
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
