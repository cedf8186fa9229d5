// Package assets keeps a document's sibling asset directory in sync
// with its content: scanning for referenced asset paths and computing
// which directory entries are orphans after a save. It never deletes
// anything itself; removal belongs to the caller after confirmation.
package assets

import (
	"net/url"
	"regexp"
)

// markdownRef matches link/image syntax on a single line. The pattern
// is deliberately greedy: on a line with several links it spans the
// widest bracket/paren range and captures the last target. Callers
// depend on that behavior when deciding which assets survive collection.
var markdownRef = regexp.MustCompile(`\[.*\]\((.*)\)`)

// inlineSrc matches src attributes in inline markup, non-greedy.
var inlineSrc = regexp.MustCompile(`src="(.*?)"`)

// ScanReferences extracts asset paths referenced by document content.
// Two independent passes run over the whole content, markdown
// link/image targets first and inline src attributes second, and their
// results are concatenated. Matches are percent-decoded, kept in order
// of first appearance within each pass, and not deduplicated.
func ScanReferences(content string) []string {
	var refs []string
	for _, m := range markdownRef.FindAllStringSubmatch(content, -1) {
		refs = append(refs, percentDecode(m[1]))
	}
	for _, m := range inlineSrc.FindAllStringSubmatch(content, -1) {
		refs = append(refs, percentDecode(m[1]))
	}
	return refs
}

// percentDecode unescapes a captured target, falling back to the raw
// value when it is not valid percent-encoding.
func percentDecode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
