// Package charset detects and converts character encodings at the
// load/save boundary. Detection is heuristic: byte-order marks first,
// then UTF-8 validation, with ISO-8859-1 as the accepts-everything
// fallback. Decoders are resolved by IANA name; asking for a name with
// no available decoder fails the operation with
// *core.UnsupportedEncodingError.
package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/aretw0/quill/pkg/core"
)

// DefaultEncoding is assumed when heuristic guessing is disabled.
const DefaultEncoding = "utf-8"

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect infers the encoding of raw file content. A BOM is always
// honored. With guess disabled the default encoding is returned;
// otherwise valid UTF-8 stays UTF-8 and anything else falls back to
// ISO-8859-1, which accepts all byte sequences.
func Detect(data []byte, guess bool) core.Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return core.Encoding{Name: "utf-8", HasBOM: true}
	case bytes.HasPrefix(data, bomUTF16LE):
		return core.Encoding{Name: "utf-16le", HasBOM: true}
	case bytes.HasPrefix(data, bomUTF16BE):
		return core.Encoding{Name: "utf-16be", HasBOM: true}
	}

	if !guess || len(data) == 0 {
		return core.Encoding{Name: DefaultEncoding}
	}

	if utf8.Valid(data) {
		return core.Encoding{Name: "utf-8"}
	}
	return core.Encoding{Name: "iso-8859-1"}
}

// Decode converts raw bytes in the given encoding to UTF-8 text,
// stripping the BOM when the encoding carries one. BOM-shaped bytes in
// a BOM-less encoding are real content (e.g. 0xFF 0xFE in Latin-1) and
// stay.
func Decode(data []byte, enc core.Encoding) (string, error) {
	name := enc.Name
	if name == "" {
		name = DefaultEncoding
	}

	if enc.HasBOM {
		data = stripBOM(data)
	}

	e, err := htmlindex.Get(name)
	if err != nil {
		return "", &core.UnsupportedEncodingError{Name: name}
	}

	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s content: %w", name, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text back to the given encoding, re-adding the
// BOM when the source file carried one.
func Encode(text string, enc core.Encoding) ([]byte, error) {
	name := enc.Name
	if name == "" {
		name = DefaultEncoding
	}

	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, &core.UnsupportedEncodingError{Name: name}
	}

	out, err := e.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s content: %w", name, err)
	}

	if enc.HasBOM {
		out = append(bomFor(name), out...)
	}
	return out, nil
}

func stripBOM(data []byte) []byte {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[3:]
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		return data[2:]
	}
	return data
}

func bomFor(name string) []byte {
	switch name {
	case "utf-16le":
		return bomUTF16LE
	case "utf-16be":
		return bomUTF16BE
	default:
		return bomUTF8
	}
}

// IsBinary attempts to detect if content is binary (not text).
// Uses heuristics: null bytes, high ratio of non-printable characters.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
	}

	if bytes.Contains(sample, []byte{0}) {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > 0.1
}
