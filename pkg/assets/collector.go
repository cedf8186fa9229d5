package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirSuffix is the marker appended to a document's base name to
// form its asset directory.
const DefaultDirSuffix = ".assets"

// Dir derives the asset directory path for a document: the extension is
// stripped and the suffix appended. Extensions listed in doubleStrip
// hide a second extension underneath and strip twice.
func Dir(pathname string, doubleStrip []string, suffix string) string {
	ext := filepath.Ext(pathname)
	base := strings.TrimSuffix(pathname, ext)
	for _, d := range doubleStrip {
		if strings.EqualFold(ext, d) {
			base = strings.TrimSuffix(base, filepath.Ext(base))
			break
		}
	}
	return base + suffix
}

// Orphans diffs the asset directory against the scanned references and
// returns the deletion candidates. It performs no deletion; the caller
// owns confirmation and removal.
//
// A missing directory is a no-op. An existing directory with no
// references makes the whole directory the single candidate. Otherwise
// every entry whose name is unreferenced is a candidate.
func Orphans(dir string, refs []string) ([]string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat asset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	if len(refs) == 0 {
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset directory: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if !isReferenced(entry.Name(), refs) {
			candidates = append(candidates, filepath.Join(dir, entry.Name()))
		}
	}
	return candidates, nil
}

// isReferenced reports whether an asset name appears inside any
// reference string. Containment, not equality: references often carry
// path prefixes ("./note.assets/a.png"). An asset whose name is a
// substring of another's is never flagged as an orphan.
func isReferenced(name string, refs []string) bool {
	for _, ref := range refs {
		if strings.Contains(ref, name) {
			return true
		}
	}
	return false
}
