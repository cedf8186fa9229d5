// Package eol classifies and converts line-ending styles and the
// trailing-newline convention of a document. The canonical in-memory
// form always uses bare LF; conversion back to the on-disk style
// happens only on save.
package eol

import (
	"strings"

	"github.com/aretw0/quill/pkg/core"
)

// Detection is the result of classifying a document's line endings.
type Detection struct {
	// Style is the resolved style to reconstitute on save.
	Style core.LineEnding

	// Mixed is true when both bare-LF and CRLF endings were found.
	Mixed bool

	// Unknown is true when no line ending was found at all (empty or
	// single-line content); Style is then the caller's preferred style.
	Unknown bool

	// AdjustOnSave is true when save must convert canonical LF back to
	// Style: whenever Style differs from LF, or detection was
	// mixed/unknown.
	AdjustOnSave bool
}

// Detect scans decoded text for bare-LF and CRLF endings independently
// and resolves the style per the rules above.
func Detect(text string, preferred core.LineEnding) Detection {
	hasLF := false
	hasCRLF := false
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\r' {
			hasCRLF = true
		} else {
			hasLF = true
		}
		if hasLF && hasCRLF {
			break
		}
	}

	d := Detection{}
	switch {
	case hasLF && !hasCRLF:
		d.Style = core.LineEndingLF
	case hasCRLF && !hasLF:
		d.Style = core.LineEndingCRLF
	case hasLF && hasCRLF:
		d.Style = preferred
		d.Mixed = true
	default:
		d.Style = preferred
		d.Unknown = true
	}

	d.AdjustOnSave = d.Style != core.LineEndingLF || d.Mixed || d.Unknown
	return d
}

// Normalize converts all line endings to bare LF. Any stray carriage
// return is folded as well so canonical content never contains '\r'.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Apply converts canonical LF content to the target style for writing.
// When adjust is false the content is written with LF endings unchanged.
func Apply(text string, style core.LineEnding, adjust bool) string {
	if !adjust || style != core.LineEndingCRLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", "\r\n")
}
