package files

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCatalog maps asset names straight to bytes.
type fakeCatalog map[string][]byte

func (c fakeCatalog) Lookup(name string) ([]byte, bool) {
	b, ok := c[name]
	return b, ok
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestResolveIcon(t *testing.T) {
	catalog := fakeCatalog{
		"papirus/text/plain.svg":      []byte("<svg>plain</svg>"),
		"papirus/text.svg":            []byte("<svg>text</svg>"),
		"papirus/inode/directory.svg": []byte("<svg>dir</svg>"),
		"papirus/default.svg":         []byte("<svg>default</svg>"),
	}

	t.Run("exact_subtype_wins", func(t *testing.T) {
		assert.Equal(t, b64("<svg>plain</svg>"),
			ResolveIcon(catalog, "text/plain", false, "papirus"))
	})

	t.Run("falls_back_to_type", func(t *testing.T) {
		assert.Equal(t, b64("<svg>text</svg>"),
			ResolveIcon(catalog, "text/x-go", false, "papirus"))
	})

	t.Run("type_beats_default", func(t *testing.T) {
		// A catalog that only has the type icon must never answer with default.
		small := fakeCatalog{
			"papirus/text.svg":    []byte("<svg>text</svg>"),
			"papirus/default.svg": []byte("<svg>default</svg>"),
		}
		assert.Equal(t, b64("<svg>text</svg>"),
			ResolveIcon(small, "text/plain", false, "papirus"))
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		assert.Equal(t, b64("<svg>default</svg>"),
			ResolveIcon(catalog, "application/pdf", false, "papirus"))
	})

	t.Run("empty_mime_uses_default_only", func(t *testing.T) {
		assert.Equal(t, b64("<svg>default</svg>"),
			ResolveIcon(catalog, "", false, "papirus"))
	})

	t.Run("directory_overrides_sniffed_mime", func(t *testing.T) {
		// Even a directory literally named "file.pdf" resolves as a directory.
		assert.Equal(t, b64("<svg>dir</svg>"),
			ResolveIcon(catalog, "application/pdf", true, "papirus"))
	})

	t.Run("no_match_is_empty_not_error", func(t *testing.T) {
		assert.Equal(t, "", ResolveIcon(fakeCatalog{}, "text/plain", false, "papirus"))
		assert.Equal(t, "", ResolveIcon(catalog, "text/plain", false, "unknown-set"))
	})
}
