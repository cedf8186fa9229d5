package assets

import (
	"reflect"
	"testing"
)

func TestScanReferences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "markdown image then inline src",
			content: `![x](a.png) <img src="b.png">`,
			want:    []string{"a.png", "b.png"},
		},
		{
			name:    "plain link",
			content: "[doc](notes/ref.md)",
			want:    []string{"notes/ref.md"},
		},
		{
			name:    "percent decoding",
			content: "![shot](note.assets/screen%20shot.png)",
			want:    []string{"note.assets/screen shot.png"},
		},
		{
			name: "references on separate lines keep order",
			content: "![a](one.png)\n" +
				"text\n" +
				"![b](two.png)\n" +
				`<img src="three.png">` + "\n",
			want: []string{"one.png", "two.png", "three.png"},
		},
		{
			// The markdown pass is greedy across the widest span of a
			// line: two links collapse into one match capturing the
			// last target. Preserved behavior, not a bug to fix.
			name:    "two links on one line collapse greedily",
			content: "[a](one.png) [b](two.png)",
			want:    []string{"two.png"},
		},
		{
			name:    "duplicates are kept",
			content: "![a](pic.png)\n![b](pic.png)\n",
			want:    []string{"pic.png", "pic.png"},
		},
		{
			name:    "no references",
			content: "just text, (parens) and [brackets] apart",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanReferences(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanReferences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"atx heading", "# My Document\n\nbody\n", "My Document"},
		{"first of many", "# First\n\n## Second\n", "First"},
		{"heading with emphasis", "# A *styled* title\n", "A styled title"},
		{"heading later in document", "intro paragraph\n\n## Late Title\n", "Late Title"},
		{"no heading", "just a paragraph\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.content); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
