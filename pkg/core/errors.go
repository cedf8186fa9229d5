package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors.
var (
	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrBinaryFile   = errors.New("file appears to be binary")
	ErrFileTooLarge = errors.New("file exceeds maximum size")
)

// UnsupportedEncodingError is returned when a load names an encoding for
// which no decoder is available. Fatal for that load; never retried.
type UnsupportedEncodingError struct {
	Name string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding: %s", e.Name)
}

// DecryptionError is returned when a secure file cannot be decrypted.
// Recoverable: the caller decides whether to prompt or abort. The
// ciphertext is never silently exposed as document content.
type DecryptionError struct {
	Path string
	Err  error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("failed to decrypt %s: %v", e.Path, e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// PartialDeletionError collects per-path removal failures. One failed
// removal does not abort the rest; the batch is reported as a whole.
type PartialDeletionError struct {
	Failures map[string]error
}

func (e *PartialDeletionError) Error() string {
	paths := make([]string, 0, len(e.Failures))
	for p := range e.Failures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return fmt.Sprintf("failed to remove %d path(s): %s", len(paths), strings.Join(paths, ", "))
}
