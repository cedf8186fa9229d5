package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
	"github.com/aretw0/quill/pkg/core"
)

var (
	verbose    bool
	rootDir    string
	keyFile    string
	passphrase string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Document persistence for text files: encodings, line endings, secure files, asset tracking",
	Long: `Quill loads text files into a canonical in-memory form (UTF-8, LF) and
writes them back in their original byte convention. It handles charset
detection, line ending fidelity, extension-triggered encryption and
orphaned-asset reporting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// workspaceRoot resolves the workspace root: the --root flag if given,
// otherwise the nearest ancestor with a root indicator, otherwise the
// working directory itself.
func workspaceRoot() string {
	if rootDir != "" {
		return rootDir
	}
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get working directory", err)
	}
	if found, err := quill.FindRoot(wd); err == nil {
		return found
	}
	return wd
}

func newService(extra ...quill.Option) *core.Service {
	opts := []quill.Option{
		quill.WithLogger(slog.Default()),
	}
	if keyFile != "" {
		opts = append(opts, quill.WithKeyFile(keyFile))
	}
	if passphrase != "" {
		opts = append(opts, quill.WithPassphrase(passphrase))
	}
	opts = append(opts, extra...)

	svc, err := quill.New(workspaceRoot(), opts...)
	if err != nil {
		fatal("Failed to initialize quill", err)
	}
	return svc
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Workspace root (default: auto-detected)")
	rootCmd.PersistentFlags().StringVar(&keyFile, "key-file", "", "Key file for secure documents")
	rootCmd.PersistentFlags().StringVar(&passphrase, "passphrase", "", "Passphrase for secure documents")
}
