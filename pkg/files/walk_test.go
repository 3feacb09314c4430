package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unlimited = ^uint(0)

// writeTree builds a fixture tree under dir from a path → content map.
// Keys ending in "/" are directories.
func writeTree(t *testing.T, dir string, tree map[string]string) {
	t.Helper()
	for name, content := range tree {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestWalk(t *testing.T) {
	t.Run("groups_by_parent", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.txt":     "aaa",
			"sub/b.txt": "bbb",
		})

		groups, err := Walk(root, unlimited, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{root, filepath.Join(root, "sub")}, groups.Keys())
		assert.Equal(t, []string{"a.txt", "sub"}, names(groups.Entries(root)))
		assert.Equal(t, []string{"b.txt"}, names(groups.Entries(filepath.Join(root, "sub"))))
	})

	t.Run("entries_sorted_by_name", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"zebra.txt": "z",
			"alpha.txt": "a",
			"mid/":      "",
			"beta.txt":  "b",
		})

		groups, err := Walk(root, unlimited, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.txt", "beta.txt", "mid", "zebra.txt"},
			names(groups.Entries(root)))
	})

	t.Run("depth_one_lists_only_immediate_children", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.txt":            "a",
			"sub/b.txt":        "b",
			"sub/deeper/c.txt": "c",
		})

		groups, err := Walk(root, 1, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{root}, groups.Keys())
		assert.Equal(t, []string{"a.txt", "sub"}, names(groups.Entries(root)))
	})

	t.Run("excluded_name_prunes_whole_subtree", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.txt":           "a",
			"index.html":      "old page",
			"images/logo.png": "png",
			"favicon.ico":     "ico",
			"sub/index.html":  "old page",
			"sub/b.txt":       "b",
		})
		exclude := map[string]bool{"index.html": true, "images": true, "favicon.ico": true}

		groups, err := Walk(root, unlimited, exclude)
		require.NoError(t, err)

		assert.Equal(t, []string{"a.txt", "sub"}, names(groups.Entries(root)))
		assert.Equal(t, []string{"b.txt"}, names(groups.Entries(filepath.Join(root, "sub"))))
		for _, key := range groups.Keys() {
			assert.NotContains(t, key, "images")
		}
	})

	t.Run("empty_directories_produce_no_group", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.txt":  "a",
			"empty/": "",
		})

		groups, err := Walk(root, unlimited, nil)
		require.NoError(t, err)

		// The empty dir is an entry of its parent but not a key itself.
		assert.Equal(t, []string{"a.txt", "empty"}, names(groups.Entries(root)))
		assert.Equal(t, []string{root}, groups.Keys())
	})

	t.Run("grouping_invariant", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.txt":            "a",
			"sub/b.txt":        "b",
			"sub/deeper/c.txt": "c",
			"other/d.txt":      "d",
		})

		groups, err := Walk(root, unlimited, nil)
		require.NoError(t, err)

		for _, key := range groups.Keys() {
			for _, entry := range groups.Entries(key) {
				assert.Equal(t, key, filepath.Dir(entry.Path))
				assert.Equal(t, key, entry.Dir)
			}
		}
	})

	t.Run("missing_root_fails", func(t *testing.T) {
		_, err := Walk(filepath.Join(t.TempDir(), "nope"), unlimited, nil)
		assert.Error(t, err)
	})
}
