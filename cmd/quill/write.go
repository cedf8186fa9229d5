package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/core"
)

var (
	writeContent    string
	writeEncoding   string
	writeLineEnding string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [path]",
	Short: "Write a document through the save pipeline",
	Long: `Write creates or updates the file at path. Content comes from
--content or stdin. An existing file keeps its detected formatting; a
new file is written as UTF-8 with LF line endings unless overridden.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		path := args[0]
		svc := newService()

		content := writeContent
		if content == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		doc, err := svc.LoadDocument(ctx, path, quill.LoadOptions{})
		if err != nil {
			// New file: start from defaults.
			doc = &core.Document{
				Pathname:        path,
				Encoding:        core.Encoding{Name: "utf-8"},
				LineEnding:      core.LineEndingLF,
				TrailingNewline: core.TrailingEnsureSingle,
			}
		}
		doc.Content = content

		opts := quill.SaveOptions{
			Encoding:               doc.Encoding,
			LineEnding:             doc.LineEnding,
			AdjustLineEndingOnSave: doc.AdjustLineEndingOnSave,
			TrailingNewline:        doc.TrailingNewline,
		}
		if writeEncoding != "" {
			opts.Encoding = core.Encoding{Name: writeEncoding}
		}
		if writeLineEnding != "" {
			opts.LineEnding = core.LineEnding(writeLineEnding)
			opts.AdjustLineEndingOnSave = opts.LineEnding == core.LineEndingCRLF
		}

		orphans, err := svc.SaveDocumentAs(ctx, doc, path, opts)
		if err != nil {
			fatal("Failed to save document", err)
		}

		fmt.Printf("Document saved: %s\n", doc.Pathname)
		if len(orphans) > 0 {
			fmt.Printf("%d orphaned asset(s); run 'quill gc %s' to review.\n", len(orphans), path)
		}
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Document content (default: stdin)")
	writeCmd.Flags().StringVar(&writeEncoding, "encoding", "", "Target encoding (e.g. utf-8, latin1)")
	writeCmd.Flags().StringVar(&writeLineEnding, "line-ending", "", "Target line ending (lf or crlf)")
}
