package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega os templates HTML embutidos no binário
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
