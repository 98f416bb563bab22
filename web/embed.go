package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// ParseTemplates parses every page template; templates are addressed by
// file name ("index.html", "error.html").
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFiles, "templates/*.html")
}

// Static holds the stylesheet and robots.txt under "static/".
func Static() fs.FS {
	return staticFiles
}
