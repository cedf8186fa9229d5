package eol

import (
	"strings"
	"testing"

	"github.com/aretw0/quill/pkg/core"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		preferred core.LineEnding
		want      Detection
	}{
		{
			name:      "only lf",
			text:      "a\nb\n",
			preferred: core.LineEndingCRLF,
			want:      Detection{Style: core.LineEndingLF},
		},
		{
			name:      "only crlf",
			text:      "a\r\nb\r\n",
			preferred: core.LineEndingLF,
			want:      Detection{Style: core.LineEndingCRLF, AdjustOnSave: true},
		},
		{
			name:      "mixed falls back to preferred",
			text:      "a\nb\r\n",
			preferred: core.LineEndingCRLF,
			want:      Detection{Style: core.LineEndingCRLF, Mixed: true, AdjustOnSave: true},
		},
		{
			name:      "mixed with lf preference still adjusts",
			text:      "a\r\nb\n",
			preferred: core.LineEndingLF,
			want:      Detection{Style: core.LineEndingLF, Mixed: true, AdjustOnSave: true},
		},
		{
			name:      "single line is unknown",
			text:      "no endings here",
			preferred: core.LineEndingLF,
			want:      Detection{Style: core.LineEndingLF, Unknown: true, AdjustOnSave: true},
		},
		{
			name:      "empty is unknown",
			text:      "",
			preferred: core.LineEndingCRLF,
			want:      Detection{Style: core.LineEndingCRLF, Unknown: true, AdjustOnSave: true},
		},
		{
			name:      "lf at start of text",
			text:      "\nrest",
			preferred: core.LineEndingCRLF,
			want:      Detection{Style: core.LineEndingLF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text, tt.preferred)
			if got != tt.want {
				t.Errorf("Detect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"crlf folded", "a\r\nb\r\n", "a\nb\n"},
		{"mixed folded", "a\nb\r\nc", "a\nb\nc"},
		{"stray cr folded", "a\rb", "a\nb"},
		{"already canonical", "a\nb\n", "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
			if strings.ContainsRune(got, '\r') {
				t.Error("normalized content contains a carriage return")
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("no adjust leaves lf", func(t *testing.T) {
		if got := Apply("a\nb\n", core.LineEndingCRLF, false); got != "a\nb\n" {
			t.Errorf("Apply() = %q", got)
		}
	})

	t.Run("adjust converts to crlf", func(t *testing.T) {
		if got := Apply("a\nb\n", core.LineEndingCRLF, true); got != "a\r\nb\r\n" {
			t.Errorf("Apply() = %q", got)
		}
	})

	t.Run("adjust to lf is the identity", func(t *testing.T) {
		if got := Apply("a\nb\n", core.LineEndingLF, true); got != "a\nb\n" {
			t.Errorf("Apply() = %q", got)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.TrailingNewline
	}{
		{"empty", "", core.TrailingDisabled},
		{"blank trailing line", "text\n\n", core.TrailingDisabled},
		{"single trailing newline", "text\n", core.TrailingEnsureSingle},
		{"lone newline", "\n", core.TrailingEnsureSingle},
		{"no trailing newline", "text", core.TrailingTrimAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestApplyPolicy(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		policy core.TrailingNewline
		want   string
	}{
		{"disabled untouched", "text\n\n\n", core.TrailingDisabled, "text\n\n\n"},
		{"ensure single collapses", "text\n\n\n", core.TrailingEnsureSingle, "text\n"},
		{"ensure single appends", "text", core.TrailingEnsureSingle, "text\n"},
		{"trim all strips", "text\n\n", core.TrailingTrimAll, "text"},
		{"trim all no-op", "text", core.TrailingTrimAll, "text"},
		{"unset untouched", "text\n", core.TrailingUnset, "text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPolicy(tt.text, tt.policy); got != tt.want {
				t.Errorf("ApplyPolicy(%q, %q) = %q, want %q", tt.text, tt.policy, got, tt.want)
			}
		})
	}
}
