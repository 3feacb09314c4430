package files

import (
	"encoding/base64"
	"strings"
)

// directoryMime overrides whatever was sniffed for directory entries.
const directoryMime = "inode/directory"

// IconCatalog is a read-only lookup of icon assets by
// "<iconset>/<category>.svg" name.
type IconCatalog interface {
	Lookup(name string) ([]byte, bool)
}

// ResolveIcon picks the icon for an entry out of catalog and returns it
// base64 encoded. Resolution tries the exact "<type>/<subtype>" asset, then
// the bare "<type>", then "default"; the first hit wins. An empty result
// means the catalog has no icon for the entry, which is not an error.
func ResolveIcon(catalog IconCatalog, mimeType string, isDir bool, iconset string) string {
	if isDir {
		mimeType = directoryMime
	}

	var targets []string
	switch kind, _, found := strings.Cut(mimeType, "/"); {
	case mimeType == "":
		targets = []string{"default"}
	case found:
		targets = []string{mimeType, kind, "default"}
	default:
		targets = []string{mimeType, "default"}
	}

	for _, target := range targets {
		if raw, ok := catalog.Lookup(iconset + "/" + target + ".svg"); ok {
			return base64.StdEncoding.EncodeToString(raw)
		}
	}
	return ""
}
