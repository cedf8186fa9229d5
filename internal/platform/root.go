package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/quill/pkg/store"
)

// FindRoot looks upwards from startDir for a workspace root indicator:
// a .quill.yaml file or a .git directory. Returns the absolute path of
// the first directory that carries one.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, store.ConfigFileName) || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no workspace root found above %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
