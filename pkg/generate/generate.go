// Package generate drives one indexing run: walk the target tree, normalize
// each directory's entries, then render and write that directory's listing
// page. Everything is synchronous and the first error aborts the run.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"indexgen/pkg/assets"
	"indexgen/pkg/files"
	"indexgen/pkg/logger"
	"indexgen/pkg/render"
)

// Options is the fully resolved configuration of a run.
type Options struct {
	Path      string // target directory
	Theme     string // bundled theme name
	Template  string // external template dir; overrides Theme when set
	Name      string // output filename written into each directory
	Print     bool   // also echo each rendered page to stdout
	MaxDepth  uint
	Root      string // display base prefix
	Human     bool
	Iconset   string
	Generator render.Generator
}

// reserved returns the entry names never listed and never descended into.
func reserved(outputName string) map[string]bool {
	return map[string]bool{
		outputName:    true,
		"images":      true,
		"favicon.ico": true,
	}
}

// Run generates one listing page per non-empty directory under opts.Path.
// Pages written before a failure stay on disk.
func Run(opts Options) error {
	set, err := loadTemplates(opts)
	if err != nil {
		return err
	}

	// Walk relative to the target so group keys, display paths and output
	// locations come out target-relative no matter how Path was spelled.
	if err := os.Chdir(opts.Path); err != nil {
		return fmt.Errorf("enter %s: %w", opts.Path, err)
	}

	groups, err := files.Walk(".", opts.MaxDepth, reserved(opts.Name))
	if err != nil {
		return err
	}

	catalog := assets.Icons()
	for _, dir := range groups.Keys() {
		entries := groups.Entries(dir)
		items := make([]files.FileItem, 0, len(entries))
		for _, entry := range entries {
			item, err := files.Extract(entry, opts.Human, opts.Iconset, catalog)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		page, err := set.Render(render.Index{
			Root:      render.DisplayRoot(opts.Root, dir),
			Files:     items,
			Generator: opts.Generator,
		})
		if err != nil {
			return err
		}

		if opts.Print {
			fmt.Println(page)
		}

		out := filepath.Join(dir, opts.Name)
		if err := os.WriteFile(out, []byte(page), 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Debug("Wrote %s", out)
	}

	logger.Info("Generated %d listing page(s) under %s", groups.Len(), opts.Path)
	return nil
}

// loadTemplates resolves the template source before any filesystem work so
// configuration errors surface up front.
func loadTemplates(opts Options) (*render.TemplateSet, error) {
	if opts.Template != "" {
		return render.LoadDir(opts.Template)
	}
	return render.LoadTheme(opts.Theme)
}
