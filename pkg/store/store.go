// Package store implements core.Store on the local filesystem. It
// composes the boundary packages (charset, eol, codec, assets) into
// the load and save pipelines, writes atomically, and reports orphan
// asset candidates after every successful save.
package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/aretw0/quill/pkg/assets"
	"github.com/aretw0/quill/pkg/charset"
	"github.com/aretw0/quill/pkg/codec"
	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/eol"
)

// DefaultMaxFileSize caps how large a file the store will load.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Config holds the configuration for the filesystem store.
type Config struct {
	// Root anchors the external-change watcher and the default salt
	// location. Load and save accept paths outside the root.
	Root string

	// KeyFile points at raw key material or a passphrase for the
	// secure-file codec. Passphrase is the in-process alternative.
	KeyFile    string
	Passphrase string

	// PreferredLineEnding is the fallback when detection is ambiguous.
	PreferredLineEnding core.LineEnding

	// AutoGuessEncoding enables heuristic encoding detection on load.
	AutoGuessEncoding bool

	// AssetSuffix overrides the asset-directory marker (".assets").
	AssetSuffix string

	MaxFileSize int64
	ReadOnly    bool
	Logger      *slog.Logger
}

// Store is the filesystem-backed document store.
type Store struct {
	mu       sync.RWMutex
	config   Config
	keychain codec.Keychain
	kinds    map[string]FileKind

	// recentSaves maps pathname to the checksum of our own last write,
	// letting the watcher tell a self-save apart from an external edit.
	recentSaves map[string]string

	watcherActive bool
}

// New creates a filesystem store.
func New(config Config) (*Store, error) {
	if config.PreferredLineEnding == "" {
		config.PreferredLineEnding = core.LineEndingLF
	}
	if config.AssetSuffix == "" {
		config.AssetSuffix = assets.DefaultDirSuffix
	}
	if config.MaxFileSize == 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}

	s := &Store{
		config:      config,
		kinds:       defaultKinds(),
		recentSaves: make(map[string]string),
	}

	switch {
	case config.KeyFile != "":
		kc, err := codec.LoadKeyFile(config.KeyFile)
		if err != nil {
			return nil, err
		}
		s.keychain = kc
	case config.Passphrase != "":
		saltDir := config.Root
		if saltDir == "" {
			saltDir = "."
		}
		s.keychain = codec.NewPassphrase(config.Passphrase, filepath.Join(saltDir, ".quill.salt"))
	}

	return s, nil
}

// Load reads the file at pathname and produces a canonical Document.
//
// Workflow:
//  1. Stat and read raw bytes (size cap, directory check).
//  2. Decrypt when the extension selects the codec.
//  3. Detect encoding (BOM, heuristics) and decode to UTF-8.
//  4. Detect line endings, normalize to bare LF.
//  5. Classify the trailing-newline convention unless overridden.
func (s *Store) Load(ctx context.Context, pathname string, opts core.LoadOptions) (*core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(pathname)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", pathname, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", abs)
	}
	if s.config.MaxFileSize > 0 && info.Size() > s.config.MaxFileSize {
		return nil, fmt.Errorf("%s: %w", abs, core.ErrFileTooLarge)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	sum := checksum(raw)

	plain := raw
	if s.kind(abs).Encrypted {
		plain, err = s.decrypt(ctx, abs, raw)
		if err != nil {
			return nil, err
		}
	}

	guess := opts.AutoGuessEncoding || s.config.AutoGuessEncoding
	enc := charset.Detect(plain, guess)
	if opts.ForceEncoding != "" {
		enc.Name = opts.ForceEncoding
	}

	// A forced encoding overrides the binary heuristic too: BOM-less
	// UTF-16 looks binary but decodes fine when the caller names it.
	if opts.ForceEncoding == "" && !enc.HasBOM && charset.IsBinary(plain) {
		return nil, fmt.Errorf("%s: %w", abs, core.ErrBinaryFile)
	}

	text, err := charset.Decode(plain, enc)
	if err != nil {
		return nil, err
	}

	preferred := opts.PreferredLineEnding
	if preferred == "" {
		preferred = s.config.PreferredLineEnding
	}
	det := eol.Detect(text, preferred)
	content := eol.Normalize(text)

	trailing := opts.TrailingNewline
	if trailing == core.TrailingUnset {
		trailing = eol.Classify(content)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("loaded document",
			"path", abs,
			"encoding", enc.Name,
			"line_ending", det.Style,
			"mixed", det.Mixed,
		)
	}

	return &core.Document{
		Content:                content,
		Filename:               filepath.Base(abs),
		Pathname:               abs,
		Encoding:               enc,
		LineEnding:             det.Style,
		IsMixedLineEndings:     det.Mixed,
		AdjustLineEndingOnSave: det.AdjustOnSave,
		TrailingNewline:        trailing,
		Checksum:               sum,
		DiskModTime:            info.ModTime(),
	}, nil
}

// Save writes the document back to its own pathname using its stored
// formatting metadata and returns the orphan-asset candidates.
func (s *Store) Save(ctx context.Context, doc *core.Document) ([]string, error) {
	return s.save(ctx, doc, doc.Pathname, core.SaveOptions{
		Encoding:               doc.Encoding,
		LineEnding:             doc.LineEnding,
		AdjustLineEndingOnSave: doc.AdjustLineEndingOnSave,
		TrailingNewline:        doc.TrailingNewline,
	})
}

// SaveAs writes the document to a new pathname with explicit formatting
// options and updates the document's metadata on success. This is the
// only path on which encoding or line ending changes.
func (s *Store) SaveAs(ctx context.Context, doc *core.Document, pathname string, opts core.SaveOptions) ([]string, error) {
	if opts.Encoding.Name == "" {
		opts.Encoding = doc.Encoding
	}
	if opts.LineEnding == "" {
		opts.LineEnding = doc.LineEnding
	}
	return s.save(ctx, doc, pathname, opts)
}

// save is the shared write pipeline: trailing-newline policy, line
// ending conversion, encode, encrypt, atomic write, orphan scan.
func (s *Store) save(ctx context.Context, doc *core.Document, pathname string, opts core.SaveOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.config.ReadOnly {
		return nil, core.ErrReadOnly
	}

	abs, err := filepath.Abs(pathname)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", pathname, err)
	}

	content := eol.ApplyPolicy(doc.Content, opts.TrailingNewline)
	text := eol.Apply(content, opts.LineEnding, opts.AdjustLineEndingOnSave)

	raw, err := charset.Encode(text, opts.Encoding)
	if err != nil {
		return nil, err
	}

	if s.kind(abs).Encrypted {
		raw, err = s.encrypt(ctx, abs, raw)
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(abs, raw, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	sum := checksum(raw)
	s.mu.Lock()
	s.recentSaves[abs] = sum
	s.mu.Unlock()

	doc.Pathname = abs
	doc.Filename = filepath.Base(abs)
	doc.Encoding = opts.Encoding
	doc.LineEnding = opts.LineEnding
	doc.AdjustLineEndingOnSave = opts.AdjustLineEndingOnSave
	doc.TrailingNewline = opts.TrailingNewline
	doc.Checksum = sum
	if info, err := os.Stat(abs); err == nil {
		doc.DiskModTime = info.ModTime()
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("saved document", "path", abs, "bytes", len(raw))
	}

	refs := assets.ScanReferences(content)
	candidates, err := assets.Orphans(s.assetDir(abs), refs)
	if err != nil {
		return nil, fmt.Errorf("saved, but asset reconciliation failed: %w", err)
	}
	return candidates, nil
}

// assetDir resolves a pathname's asset directory through the extension
// descriptor table and the configured suffix.
func (s *Store) assetDir(pathname string) string {
	return assets.Dir(pathname, s.kind(pathname).StripForAssets, s.config.AssetSuffix)
}

// OrphanCandidates computes the orphan-asset deletion candidates for a
// document without writing anything, using the same directory
// derivation a save uses.
func (s *Store) OrphanCandidates(ctx context.Context, doc *core.Document) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	refs := assets.ScanReferences(doc.Content)
	return assets.Orphans(s.assetDir(doc.Pathname), refs)
}

// RemovePaths removes confirmed orphan candidates. Each path is removed
// independently; failures are collected into *core.PartialDeletionError
// and do not abort the remaining removals.
func (s *Store) RemovePaths(ctx context.Context, paths []string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	failures := make(map[string]error)
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.RemoveAll(p); err != nil {
			failures[p] = err
			if s.config.Logger != nil {
				s.config.Logger.Warn("failed to remove orphan", "path", p, "error", err)
			}
		}
	}

	if len(failures) > 0 {
		return &core.PartialDeletionError{Failures: failures}
	}
	return nil
}

func (s *Store) decrypt(ctx context.Context, pathname string, raw []byte) ([]byte, error) {
	key, err := s.key(ctx)
	if err != nil {
		return nil, &core.DecryptionError{Path: pathname, Err: err}
	}
	plain, err := codec.Decrypt(raw, key)
	if err != nil {
		return nil, &core.DecryptionError{Path: pathname, Err: err}
	}
	return plain, nil
}

func (s *Store) encrypt(ctx context.Context, pathname string, raw []byte) ([]byte, error) {
	key, err := s.key(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot encrypt %s: %w", pathname, err)
	}
	sealed, err := codec.Encrypt(raw, key)
	if err != nil {
		return nil, fmt.Errorf("cannot encrypt %s: %w", pathname, err)
	}
	return sealed, nil
}

func (s *Store) key(ctx context.Context) ([]byte, error) {
	if s.keychain == nil {
		return nil, errors.New("no keychain configured for secure files")
	}
	return s.keychain.Key(ctx)
}

func checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// isSelfSave reports whether the bytes currently on disk at pathname
// are the ones we wrote last, and forgets the entry when they are not.
func (s *Store) isSelfSave(pathname string) bool {
	s.mu.RLock()
	expected, ok := s.recentSaves[pathname]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	raw, err := os.ReadFile(pathname)
	if err != nil {
		return false
	}
	if checksum(raw) == expected {
		return true
	}

	s.mu.Lock()
	delete(s.recentSaves, pathname)
	s.mu.Unlock()
	return false
}

var _ core.Store = (*Store)(nil)
var _ core.AssetReporter = (*Store)(nil)
