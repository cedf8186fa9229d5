package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/core"
)

var (
	gcPrune bool
	gcYes   bool
)

var gcCmd = &cobra.Command{
	Use:   "gc [path]",
	Short: "Report orphaned assets for a document",
	Long: `Gc lists files in the document's asset directory that the document no
longer references. Nothing is deleted unless --prune is given, and
pruning asks for confirmation unless --yes is also given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := newService()

		doc, err := svc.LoadDocument(ctx, args[0], quill.LoadOptions{})
		if err != nil {
			fatal("Failed to load document", err)
		}

		candidates, err := svc.OrphanCandidates(ctx, doc)
		if err != nil {
			fatal("Failed to scan assets", err)
		}

		if len(candidates) == 0 {
			fmt.Println("No orphaned assets.")
			return
		}

		for _, c := range candidates {
			fmt.Println(c)
		}

		if !gcPrune {
			return
		}

		if !gcYes && !confirm(fmt.Sprintf("Delete %d path(s)?", len(candidates))) {
			fmt.Println("Aborted.")
			return
		}

		if err := svc.RemovePaths(ctx, candidates); err != nil {
			var pde *core.PartialDeletionError
			if errors.As(err, &pde) {
				fmt.Fprintf(os.Stderr, "Some paths could not be removed:\n%v\n", pde)
				os.Exit(1)
			}
			fatal("Failed to remove orphans", err)
		}
		fmt.Printf("Removed %d path(s).\n", len(candidates))
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(gcCmd)
	gcCmd.Flags().BoolVar(&gcPrune, "prune", false, "Delete the orphaned assets")
	gcCmd.Flags().BoolVar(&gcYes, "yes", false, "Skip the confirmation prompt")
}
