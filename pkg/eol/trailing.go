package eol

import (
	"strings"

	"github.com/aretw0/quill/pkg/core"
)

// Classify derives the trailing-newline policy from canonical
// (LF-normalized) content. It only runs when the caller supplied no
// explicit override.
//
// Empty content and content already ending in a blank line are left
// alone; a single trailing LF means save must guarantee exactly one;
// content not ending in LF means save must strip them all.
func Classify(text string) core.TrailingNewline {
	n := len(text)
	switch {
	case n == 0:
		return core.TrailingDisabled
	case n >= 2 && text[n-1] == '\n' && text[n-2] == '\n':
		return core.TrailingDisabled
	case text[n-1] == '\n':
		return core.TrailingEnsureSingle
	default:
		return core.TrailingTrimAll
	}
}

// ApplyPolicy rewrites canonical content per the policy. It runs on
// save before any line-ending conversion.
func ApplyPolicy(text string, policy core.TrailingNewline) string {
	switch policy {
	case core.TrailingEnsureSingle:
		return strings.TrimRight(text, "\n") + "\n"
	case core.TrailingTrimAll:
		return strings.TrimRight(text, "\n")
	default:
		return text
	}
}
