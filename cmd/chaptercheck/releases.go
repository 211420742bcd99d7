package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Check your list for new chapters",
	Long:  "Fetch the latest chapter for every tracked manga and report the ones that changed",
	Run: func(cmd *cobra.Command, args []string) {
		tracker, cleanup := buildTracker()
		defer cleanup()
		sess := requireSession(tracker)

		fmt.Println("🔍 Checking for new releases...")

		updated, deltas, err := tracker.Scan(sess)
		cobra.CheckErr(err)

		if len(updated) == 0 {
			fmt.Println("📚 Your list is empty. Use 'chaptercheck add' to track a manga.")
			return
		}
		if len(deltas) == 0 {
			fmt.Printf("💤 No new releases across %d manga\n", len(updated))
			return
		}

		fmt.Printf("🔔 %d new release(s)!\n", len(deltas))
		for _, delta := range deltas {
			fmt.Printf("  📖 %s: chapter %s\n", delta.Name, delta.NewChapter)
		}
	},
}

func init() {
	rootCmd.AddCommand(releasesCmd)
}
