package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Groups collects the surviving children of each visited directory, keyed
// by parent directory path. Key order is discovery order so that a run
// produces its pages deterministically.
type Groups struct {
	keys []string
	m    map[string][]Entry
}

// Keys returns the group keys in discovery order.
func (g *Groups) Keys() []string {
	return g.keys
}

// Entries returns the ordered children grouped under dir.
func (g *Groups) Entries(dir string) []Entry {
	return g.m[dir]
}

// Len returns the number of directories that have at least one child.
func (g *Groups) Len() int {
	return len(g.keys)
}

func (g *Groups) add(dir string, e Entry) {
	if _, seen := g.m[dir]; !seen {
		g.keys = append(g.keys, dir)
	}
	g.m[dir] = append(g.m[dir], e)
}

// Walk traverses root up to maxDepth levels deep and groups every visited
// entry under its parent directory. Entries are visited in lexicographic
// name order per directory. An entry whose base name is in exclude is
// pruned before descent, so an excluded directory contributes nothing from
// its whole subtree. Root itself is at depth 0 and is never an entry.
//
// Any traversal error aborts the walk.
func Walk(root string, maxDepth uint, exclude map[string]bool) (*Groups, error) {
	groups := &Groups{m: make(map[string][]Entry)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if exclude[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		depth := uint(strings.Count(rel, string(filepath.Separator))) + 1
		if depth > maxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		parent := filepath.Dir(path)
		groups.add(parent, Entry{DirEntry: d, Path: path, Dir: parent})

		if d.IsDir() && depth == maxDepth {
			// Children would sit past the cutoff.
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return groups, nil
}
