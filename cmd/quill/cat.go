package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/core"
)

var catJSON bool

var catCmd = &cobra.Command{
	Use:   "cat [path]",
	Short: "Print a document's canonical content",
	Long: `Cat loads the file through the full pipeline (decryption, charset
decoding, line ending normalization) and prints the canonical UTF-8/LF
content. With --json it prints the whole document including metadata.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()

		doc, err := svc.LoadDocument(context.Background(), args[0], quill.LoadOptions{})
		if err != nil {
			var de *core.DecryptionError
			if errors.As(err, &de) {
				fmt.Fprintf(os.Stderr, "Cannot decrypt %s: %v\n", de.Path, de.Unwrap())
				fmt.Fprintln(os.Stderr, "Check the key material; the file may have been written with a different key or predate the current scheme.")
				os.Exit(1)
			}
			fatal("Failed to load document", err)
		}

		if catJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(doc); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Print(doc.Content)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
	catCmd.Flags().BoolVar(&catJSON, "json", false, "Output in JSON format")
}
