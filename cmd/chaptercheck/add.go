package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/chaptercheck/pkg/services"
	"github.com/kerbaras/chaptercheck/pkg/sources"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a manga to your list",
	Long:  "Resolve a free-text title and add it to your tracking list",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		tracker, cleanup := buildTracker()
		defer cleanup()
		sess := requireSession(tracker)

		fmt.Printf("🔍 Searching for '%s'...\n", query)

		entry, err := tracker.Resolve(query)
		if errors.Is(err, sources.ErrNotFound) {
			fmt.Println("❌ No results found.")
			return
		}
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		fmt.Printf("✅ Found: %s (ID: %s, chapter %s)\n", entry.Title, entry.CatalogID, entry.CurrentChapter)

		if err := tracker.AddItem(sess, *entry); err != nil {
			if errors.Is(err, services.ErrDuplicateItem) {
				fmt.Printf("❌ '%s' is already on your list\n", entry.Title)
				return
			}
			cobra.CheckErr(fmt.Errorf("failed to add manga: %w", err))
		}

		fmt.Printf("✅ Added '%s' to your list\n", entry.Title)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
