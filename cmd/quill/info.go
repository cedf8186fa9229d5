package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/assets"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show a document's detected formatting metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService(quill.WithReadOnly(true))

		doc, err := svc.LoadDocument(context.Background(), args[0], quill.LoadOptions{})
		if err != nil {
			fatal("Failed to load document", err)
		}

		title := assets.Title(doc.Content)
		if title == "" {
			title = "(untitled)"
		}

		fmt.Printf("Path:         %s\n", doc.Pathname)
		fmt.Printf("Title:        %s\n", title)
		fmt.Printf("Encoding:     %s (BOM: %v)\n", doc.Encoding.Name, doc.Encoding.HasBOM)
		fmt.Printf("Line ending:  %s (mixed: %v, adjust on save: %v)\n",
			doc.LineEnding, doc.IsMixedLineEndings, doc.AdjustLineEndingOnSave)
		fmt.Printf("Trailing:     %s\n", doc.TrailingNewline)
		fmt.Printf("Checksum:     %s\n", doc.Checksum)
		fmt.Printf("Modified:     %s\n", doc.DiskModTime.Format("2006-01-02 15:04:05"))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
