// Package render owns the template side of a run: loading the layout/index
// pair once, and executing it per directory group.
package render

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"indexgen/pkg/assets"
	"indexgen/pkg/files"
)

// Generator identifies the tool in rendered pages and in version output.
type Generator struct {
	Name    string
	Version string
	URL     string
}

// Index is the context one listing page is rendered from.
type Index struct {
	Root      string
	Files     []files.FileItem
	Generator Generator
}

const (
	layoutTemplate = "layout.html"
	indexTemplate  = "index.html"
)

// funcMap carries the helpers templates may use. datauri is the explicit
// escape-hatch that lets a base64 icon payload through URL filtering as a
// data: URI.
var funcMap = template.FuncMap{
	"datauri": func(b64 string) template.URL {
		return template.URL("data:image/svg+xml;base64," + b64)
	},
}

// TemplateSet holds the parsed layout and index templates for a run.
// It is loaded once and reused for every directory.
type TemplateSet struct {
	tmpl *template.Template
}

// LoadTheme parses the two bundled templates of a builtin theme. An unknown
// theme is a configuration error.
func LoadTheme(theme string) (*TemplateSet, error) {
	t := template.New("theme").Funcs(funcMap)
	for _, name := range []string{layoutTemplate, indexTemplate} {
		src, err := assets.Template(theme, name)
		if err != nil {
			return nil, fmt.Errorf("unknown theme %q (bundled themes: %s)",
				theme, strings.Join(assets.Themes(), ", "))
		}
		if _, err := t.New(name).Parse(string(src)); err != nil {
			return nil, fmt.Errorf("parse bundled template %s/%s: %w", theme, name, err)
		}
	}
	return &TemplateSet{tmpl: t}, nil
}

// LoadDir parses layout.html and index.html from an external template
// directory, overriding the bundled themes. A missing or malformed template
// is a configuration error.
func LoadDir(dir string) (*TemplateSet, error) {
	t, err := template.New(layoutTemplate).Funcs(funcMap).ParseFiles(
		filepath.Join(dir, layoutTemplate),
		filepath.Join(dir, indexTemplate),
	)
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", dir, err)
	}
	return &TemplateSet{tmpl: t}, nil
}

// Render executes the listing page for one directory group.
func (ts *TemplateSet) Render(ctx Index) (string, error) {
	var buf strings.Builder
	if err := ts.tmpl.ExecuteTemplate(&buf, layoutTemplate, ctx); err != nil {
		return "", fmt.Errorf("render %s: %w", ctx.Root, err)
	}
	return buf.String(), nil
}

// DisplayRoot converts a traversal-relative group key into the path shown
// on the page: the configured base prefix plus the key with a single
// leading "." and a single leading path separator stripped.
func DisplayRoot(base, key string) string {
	key = strings.TrimPrefix(key, ".")
	key = strings.TrimPrefix(key, string(filepath.Separator))
	return base + key
}
