// Document is the central entity of the domain.
package core

import (
	"fmt"
	"time"
)

// LineEnding represents a line ending style as it exists on disk.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"
)

// Sequence returns the byte sequence for the style.
func (e LineEnding) Sequence() string {
	if e == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// TrailingNewline is the save-time rule controlling how many trailing
// line breaks a document is written with.
type TrailingNewline string

const (
	// TrailingUnset means the policy has not been decided; load will
	// classify the content and pick one of the concrete values below.
	TrailingUnset TrailingNewline = ""

	// TrailingDisabled leaves the document's trailing newlines untouched.
	TrailingDisabled TrailingNewline = "disabled"

	// TrailingEnsureSingle guarantees exactly one trailing newline on save.
	TrailingEnsureSingle TrailingNewline = "ensureSingle"

	// TrailingTrimAll strips every trailing newline on save.
	TrailingTrimAll TrailingNewline = "trimAll"
)

// Encoding identifies a character encoding by IANA name plus whether the
// on-disk form carries a byte-order mark.
type Encoding struct {
	Name   string
	HasBOM bool
}

// Document represents a file loaded into canonical in-memory form.
// Content uses bare LF line endings; all conversion to and from
// CR-carrying forms happens at the load/save boundary. Encoding and
// LineEnding are fixed at load time and only change through an explicit
// save-as operation.
type Document struct {
	// Content is the canonical document text. It never contains '\r'.
	Content string

	// Filename is the display name, Pathname the resolved absolute path.
	Filename string
	Pathname string

	// Encoding is the encoding the file had on disk and will be written
	// back with.
	Encoding Encoding

	// LineEnding is the style to reconstitute on save.
	LineEnding LineEnding

	// IsMixedLineEndings is true when the source contained both LF and
	// CRLF endings.
	IsMixedLineEndings bool

	// AdjustLineEndingOnSave is true when save must convert canonical LF
	// back to LineEnding.
	AdjustLineEndingOnSave bool

	// TrailingNewline is the policy applied to Content before the line
	// ending conversion on save.
	TrailingNewline TrailingNewline

	// Checksum is the blake3 hex digest of the bytes last read from or
	// written to disk. Metadata only; not part of the round-trip.
	Checksum string

	// DiskModTime is the file's modification time at load or last save.
	// Used to detect external changes.
	DiskModTime time.Time
}

// EventType represents the type of external change seen on disk.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to a watched file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
