package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/assets"
)

var refsCmd = &cobra.Command{
	Use:   "refs [path]",
	Short: "List asset references found in a document",
	Long: `Refs scans the document for markdown image/link targets and inline
src attributes and prints each reference in document order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService(quill.WithReadOnly(true))

		doc, err := svc.LoadDocument(context.Background(), args[0], quill.LoadOptions{})
		if err != nil {
			fatal("Failed to load document", err)
		}

		for _, ref := range assets.ScanReferences(doc.Content) {
			fmt.Println(ref)
		}
	},
}

func init() {
	rootCmd.AddCommand(refsCmd)
}
