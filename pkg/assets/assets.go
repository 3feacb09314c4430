// Package assets bundles the builtin theme templates and icon catalogs
// into the binary. Both catalogs are read-only for the life of the process.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

//go:embed templates icons
var bundled embed.FS

// Template returns the source of one bundled template file for a theme.
func Template(theme, name string) ([]byte, error) {
	return bundled.ReadFile(path.Join("templates", theme, name))
}

// Themes lists the bundled theme names.
func Themes() []string {
	entries, err := fs.ReadDir(bundled, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IconCatalog serves bundled icon assets addressed by
// "<iconset>/<category>.svg" names.
type IconCatalog struct {
	fsys fs.FS
}

// Lookup returns the raw bytes of an icon asset, reporting whether it exists.
func (c IconCatalog) Lookup(name string) ([]byte, bool) {
	b, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Icons returns the bundled icon catalog.
func Icons() IconCatalog {
	sub, err := fs.Sub(bundled, "icons")
	if err != nil {
		// The embedded tree always contains icons/.
		panic(err)
	}
	return IconCatalog{fsys: sub}
}
