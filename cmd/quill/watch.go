package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the workspace for external changes",
	Long: `Watch streams debounced filesystem events for the workspace root.
Events caused by quill's own saves are filtered out. Stop with Ctrl-C.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		svc := newService()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		fmt.Printf("Watching %s (pattern: %s)\n", workspaceRoot(), watchPattern)
		for {
			select {
			case <-sigs:
				cancel()
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				ts := time.Unix(ev.Timestamp, 0).Format("15:04:05")
				fmt.Printf("%s %-6s %s\n", ts, ev.Type, ev.Path)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "**/*", "Glob pattern for paths to report")
}
