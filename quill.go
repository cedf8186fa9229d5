package quill

import (
	"log/slog"

	"github.com/aretw0/quill/internal/platform"
	"github.com/aretw0/quill/pkg/core"
)

// --- Types ---

// Document is a public alias for the canonical in-memory document.
type Document = core.Document

// LoadOptions is a public alias for the load options.
type LoadOptions = core.LoadOptions

// SaveOptions is a public alias for the save options.
type SaveOptions = core.SaveOptions

// Event is a public alias for a watcher event.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring Quill.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKeyFile points the secure-file codec at a key file.
func WithKeyFile(path string) Option {
	return platform.WithKeyFile(path)
}

// WithPassphrase supplies the secure-file passphrase directly.
func WithPassphrase(passphrase string) Option {
	return platform.WithPassphrase(passphrase)
}

// WithPreferredLineEnding sets the fallback line ending used when
// detection is ambiguous.
func WithPreferredLineEnding(le core.LineEnding) Option {
	return platform.WithPreferredLineEnding(le)
}

// WithAutoGuessEncoding enables or disables heuristic encoding detection.
func WithAutoGuessEncoding(enabled bool) Option {
	return platform.WithAutoGuessEncoding(enabled)
}

// WithAssetSuffix overrides the asset-directory marker (".assets").
func WithAssetSuffix(suffix string) Option {
	return platform.WithAssetSuffix(suffix)
}

// WithMaxFileSize caps how large a file the store will load.
func WithMaxFileSize(size int64) Option {
	return platform.WithMaxFileSize(size)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithStore injects a custom storage backend (e.g. a mock).
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithoutFileConfig skips loading .quill.yaml from the workspace root.
func WithoutFileConfig() Option {
	return platform.WithoutFileConfig()
}

// --- Factory ---

// New creates a new Quill Service rooted at the given directory.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// FindRoot looks upwards from startDir for a workspace root indicator
// (.quill.yaml or .git).
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
