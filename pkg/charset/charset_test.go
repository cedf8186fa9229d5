package charset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/quill/pkg/core"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		guess   bool
		want    core.Encoding
	}{
		{"empty defaults to utf-8", nil, true, core.Encoding{Name: "utf-8"}},
		{"plain ascii", []byte("hello"), true, core.Encoding{Name: "utf-8"}},
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, true, core.Encoding{Name: "utf-8", HasBOM: true}},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'h', 0x00}, true, core.Encoding{Name: "utf-16le", HasBOM: true}},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x00, 'h'}, true, core.Encoding{Name: "utf-16be", HasBOM: true}},
		{"invalid utf-8 falls back to latin-1", []byte{'c', 'a', 'f', 0xE9}, true, core.Encoding{Name: "iso-8859-1"}},
		{"guessing disabled returns default", []byte{'c', 'a', 'f', 0xE9}, false, core.Encoding{Name: "utf-8"}},
		{"bom honored even without guessing", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, false, core.Encoding{Name: "utf-8", HasBOM: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.data, tt.guess)
			if got != tt.want {
				t.Errorf("Detect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("utf-8 with bom strips marker", func(t *testing.T) {
		data := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
		got, err := Decode(data, core.Encoding{Name: "utf-8", HasBOM: true})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "hi" {
			t.Errorf("Decode() = %q, want %q", got, "hi")
		}
	})

	t.Run("latin-1 maps high bytes", func(t *testing.T) {
		got, err := Decode([]byte{'c', 'a', 'f', 0xE9}, core.Encoding{Name: "iso-8859-1"})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "café" {
			t.Errorf("Decode() = %q, want %q", got, "café")
		}
	})

	t.Run("utf-16le decodes pairs", func(t *testing.T) {
		data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		got, err := Decode(data, core.Encoding{Name: "utf-16le", HasBOM: true})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "hi" {
			t.Errorf("Decode() = %q, want %q", got, "hi")
		}
	})

	t.Run("bom-shaped bytes survive in bom-less encodings", func(t *testing.T) {
		// 0xFF 0xFE is a UTF-16LE BOM, but in Latin-1 it is "ÿþ".
		got, err := Decode([]byte{0xFF, 0xFE, 'a'}, core.Encoding{Name: "iso-8859-1"})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "ÿþa" {
			t.Errorf("Decode() = %q, want %q", got, "ÿþa")
		}
	})

	t.Run("unknown encoding name fails", func(t *testing.T) {
		_, err := Decode([]byte("x"), core.Encoding{Name: "klingon-8"})
		var ue *core.UnsupportedEncodingError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UnsupportedEncodingError, got %v", err)
		}
		if ue.Name != "klingon-8" {
			t.Errorf("error names %q, want klingon-8", ue.Name)
		}
	})

	t.Run("empty name uses default", func(t *testing.T) {
		got, err := Decode([]byte("hi"), core.Encoding{})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if got != "hi" {
			t.Errorf("Decode() = %q, want %q", got, "hi")
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("utf-8 bom re-added", func(t *testing.T) {
		got, err := Encode("hi", core.Encoding{Name: "utf-8", HasBOM: true})
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		want := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
		if !bytes.Equal(got, want) {
			t.Errorf("Encode() = %v, want %v", got, want)
		}
	})

	t.Run("utf-16le bom re-added", func(t *testing.T) {
		got, err := Encode("hi", core.Encoding{Name: "utf-16le", HasBOM: true})
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		want := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		if !bytes.Equal(got, want) {
			t.Errorf("Encode() = %v, want %v", got, want)
		}
	})

	t.Run("round trip through latin-1", func(t *testing.T) {
		enc := core.Encoding{Name: "iso-8859-1"}
		raw, err := Encode("café", enc)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		back, err := Decode(raw, enc)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if back != "café" {
			t.Errorf("round trip = %q, want %q", back, "café")
		}
	})

	t.Run("unknown encoding name fails", func(t *testing.T) {
		_, err := Encode("x", core.Encoding{Name: "klingon-8"})
		var ue *core.UnsupportedEncodingError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UnsupportedEncodingError, got %v", err)
		}
	})
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello\nworld\n"), false},
		{"null byte", []byte{'a', 0x00, 'b'}, true},
		{"mostly control characters", bytes.Repeat([]byte{0x01}, 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}
