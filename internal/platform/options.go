package platform

import (
	"log/slog"

	"github.com/aretw0/quill/pkg/core"
)

// options holds the internal configuration for the Quill service.
type options struct {
	store               core.Store
	logger              *slog.Logger
	keyFile             string
	passphrase          string
	preferredLineEnding core.LineEnding
	autoGuessEncoding   bool
	assetSuffix         string
	maxFileSize         int64
	readOnly            bool
	skipFileConfig      bool
}

// Option defines a functional option for configuring Quill.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoGuessEncoding: true,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKeyFile points the secure-file codec at a key file. The file
// holds either exactly 32 bytes of raw key material or a passphrase.
func WithKeyFile(path string) Option {
	return func(o *options) {
		o.keyFile = path
	}
}

// WithPassphrase supplies the secure-file passphrase directly instead
// of through a key file.
func WithPassphrase(passphrase string) Option {
	return func(o *options) {
		o.passphrase = passphrase
	}
}

// WithPreferredLineEnding sets the fallback line ending used when
// detection is ambiguous. Defaults to LF.
func WithPreferredLineEnding(le core.LineEnding) Option {
	return func(o *options) {
		o.preferredLineEnding = le
	}
}

// WithAutoGuessEncoding enables or disables heuristic encoding
// detection on load. Enabled by default.
func WithAutoGuessEncoding(enabled bool) Option {
	return func(o *options) {
		o.autoGuessEncoding = enabled
	}
}

// WithAssetSuffix overrides the asset-directory marker (".assets").
func WithAssetSuffix(suffix string) Option {
	return func(o *options) {
		o.assetSuffix = suffix
	}
}

// WithMaxFileSize caps how large a file the store will load.
// Zero means the default (10MB).
func WithMaxFileSize(size int64) Option {
	return func(o *options) {
		o.maxFileSize = size
	}
}

// WithReadOnly enables read-only mode. Save, SaveAs and RemovePaths
// return ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithStore injects a custom storage backend (e.g. a mock). If
// provided, the default filesystem store is skipped entirely and the
// other storage options are ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithoutFileConfig skips loading .quill.yaml from the workspace root.
func WithoutFileConfig() Option {
	return func(o *options) {
		o.skipFileConfig = true
	}
}
