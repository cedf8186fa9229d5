package core

import "context"

// LoadOptions controls how a document is brought into canonical form.
type LoadOptions struct {
	// PreferredLineEnding is the fallback style when detection finds
	// mixed or no line endings. The zero value falls back to the
	// store's configured default.
	PreferredLineEnding LineEnding

	// AutoGuessEncoding enables heuristic encoding detection. The zero
	// value falls back to the store's configured default; with guessing
	// off everywhere the store assumes UTF-8, honoring a BOM if one is
	// present.
	AutoGuessEncoding bool

	// TrailingNewline, when set, overrides classification of the
	// document's trailing-newline convention.
	TrailingNewline TrailingNewline

	// ForceEncoding, when non-empty, bypasses detection entirely and
	// decodes with the named encoding. An unknown name fails the load
	// with *UnsupportedEncodingError.
	ForceEncoding string
}

// SaveOptions carries the formatting metadata for a save-as operation,
// the only path on which a document's encoding or line ending may change.
type SaveOptions struct {
	Encoding               Encoding
	LineEnding             LineEnding
	AdjustLineEndingOnSave bool
	TrailingNewline        TrailingNewline
}

// Store defines the contract for loading and persisting documents.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, memory, remote).
//
// Load and save are independent operations: two concurrent saves to the
// same pathname race at the filesystem level and the last write wins.
// Callers needing stronger guarantees serialize externally.
type Store interface {
	// Load reads the file at pathname and produces a canonical Document.
	Load(ctx context.Context, pathname string, opts LoadOptions) (*Document, error)

	// Save writes the document back to its own pathname using its stored
	// formatting metadata. On success it returns the orphan-asset
	// deletion candidates (possibly empty); the caller owns confirmation
	// and removal.
	Save(ctx context.Context, doc *Document) ([]string, error)

	// SaveAs writes the document to a new pathname with explicit
	// formatting options, updating the document's metadata on success.
	SaveAs(ctx context.Context, doc *Document, pathname string, opts SaveOptions) ([]string, error)

	// RemovePaths removes each path independently. Failures are
	// collected into *PartialDeletionError; one failure does not abort
	// the remaining removals.
	RemovePaths(ctx context.Context, paths []string) error
}

// Watchable defines an interface for stores that can report external
// changes to files under their root.
type Watchable interface {
	// Watch emits an Event for every external change matching pattern.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// AssetReporter defines an interface for stores that can compute the
// orphan-asset deletion candidates for a document without writing it.
// The asset-directory layout is store configuration, so the report
// belongs to the store rather than to callers re-deriving paths.
type AssetReporter interface {
	// OrphanCandidates returns the deletion candidates for the
	// document's asset directory. It never deletes anything.
	OrphanCandidates(ctx context.Context, doc *Document) ([]string, error)
}
