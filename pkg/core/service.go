package core

import (
	"context"
	"errors"
	"sync"
)

// Service handles the business logic for documents.
type Service struct {
	mu    sync.RWMutex
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// LoadDocument loads a document with validation.
func (s *Service) LoadDocument(ctx context.Context, pathname string, opts LoadOptions) (*Document, error) {
	if pathname == "" {
		return nil, errors.New("document pathname cannot be empty")
	}
	// An empty PreferredLineEnding is deliberate: the store resolves it
	// against its configured default.
	return s.store.Load(ctx, pathname, opts)
}

// SaveDocument persists a document and returns the orphan-asset deletion
// candidates. The caller owns confirmation and removal of the candidates.
func (s *Service) SaveDocument(ctx context.Context, doc *Document) ([]string, error) {
	if doc == nil {
		return nil, errors.New("document cannot be nil")
	}
	if doc.Pathname == "" {
		return nil, errors.New("document has no pathname")
	}
	return s.store.Save(ctx, doc)
}

// SaveDocumentAs persists a document to a new pathname with explicit
// formatting options. This is the only operation that may change a
// document's encoding or line ending.
func (s *Service) SaveDocumentAs(ctx context.Context, doc *Document, pathname string, opts SaveOptions) ([]string, error) {
	if doc == nil {
		return nil, errors.New("document cannot be nil")
	}
	if pathname == "" {
		return nil, errors.New("target pathname cannot be empty")
	}
	return s.store.SaveAs(ctx, doc, pathname, opts)
}

// RemovePaths deletes previously confirmed orphan candidates. Each path
// is removed independently; failures come back as *PartialDeletionError.
func (s *Service) RemovePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	return s.store.RemovePaths(ctx, paths)
}

// OrphanCandidates reports the orphan-asset deletion candidates for a
// document without saving it, if the store supports asset reporting.
func (s *Service) OrphanCandidates(ctx context.Context, doc *Document) ([]string, error) {
	if doc == nil {
		return nil, errors.New("document cannot be nil")
	}
	r, ok := s.store.(AssetReporter)
	if !ok {
		return nil, errors.New("store does not support asset reporting")
	}
	return r.OrphanCandidates(ctx, doc)
}

// Watch observes external changes in the store if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}
