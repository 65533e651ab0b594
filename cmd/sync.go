package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:       "sync [type]",
	Short:     "Run a one-shot catalog sync",
	Long:      `Fetches the upstream listings and reconciles them into the catalog. Without a type, all content types are synced.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"movies", "series", "animes", "games", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.logger.Sync()

		contentType := "all"
		if len(args) == 1 {
			contentType = args[0]
		}

		return a.syncFeature().Orchestrator().Run(context.Background(), contentType)
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
