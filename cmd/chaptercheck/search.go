package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/chaptercheck/pkg/sources"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Resolve a manga title against the catalog",
	Long:  "Look up a free-text title and print the catalog ID, canonical title and current chapter",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		tracker, cleanup := buildTracker()
		defer cleanup()

		fmt.Printf("🔍 Searching for '%s'...\n", query)

		entry, err := tracker.Resolve(query)
		if errors.Is(err, sources.ErrNotFound) {
			fmt.Println("❌ No results found.")
			return
		}
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		fmt.Printf("✅ Found: %s (ID: %s)\n", entry.Title, entry.CatalogID)
		fmt.Printf("📖 Current chapter: %s\n", entry.CurrentChapter)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
