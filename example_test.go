package quill_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/quill"
)

// Example demonstrates loading a CRLF file into canonical form. The
// document content is normalized to LF while the metadata remembers
// the on-disk convention for the next save.
func Example() {
	dir, err := os.MkdirTemp("", "quill-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("hello\r\nworld\r\n"), 0644); err != nil {
		panic(err)
	}

	svc, err := quill.New(dir)
	if err != nil {
		panic(err)
	}

	doc, err := svc.LoadDocument(context.Background(), path, quill.LoadOptions{})
	if err != nil {
		panic(err)
	}

	fmt.Printf("content=%q line_ending=%s adjust=%v\n", doc.Content, doc.LineEnding, doc.AdjustLineEndingOnSave)
	// Output: content="hello\nworld\n" line_ending=crlf adjust=true
}
