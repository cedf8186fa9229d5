package store

import (
	"path/filepath"
	"strings"
)

// SecureExtension is the single reserved extension that routes a file
// through the encryption codec.
const SecureExtension = ".mdc"

// FileKind describes how an extension behaves in the store. Extensions
// map to kinds through a single lookup table instead of string
// comparisons scattered across call sites.
type FileKind struct {
	// Encrypted routes content through the codec on load and save.
	Encrypted bool

	// StripForAssets lists extensions that hide the document's real
	// extension beneath them; asset-directory derivation strips a
	// second extension when the file carries one of these.
	StripForAssets []string
}

func defaultKinds() map[string]FileKind {
	return map[string]FileKind{
		SecureExtension: {Encrypted: true, StripForAssets: []string{SecureExtension}},
	}
}

// kind resolves the behavior descriptor for a pathname. Unknown
// extensions get the zero kind: plain text, no codec.
func (s *Store) kind(pathname string) FileKind {
	return s.kinds[strings.ToLower(filepath.Ext(pathname))]
}
