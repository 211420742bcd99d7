package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kerbaras/chaptercheck/pkg/services"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [number...]",
	Short: "Remove manga from your list",
	Long:  "Remove one or more manga by their list numbers (as shown by 'chaptercheck list')",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tracker, cleanup := buildTracker()
		defer cleanup()
		sess := requireSession(tracker)

		indices := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				cobra.CheckErr(fmt.Errorf("invalid list number %q", arg))
			}
			indices = append(indices, n-1)
		}

		kept, err := tracker.RemoveItems(sess, indices)
		if errors.Is(err, services.ErrNoSelection) {
			fmt.Println("❌ Nothing selected.")
			return
		}
		cobra.CheckErr(err)

		fmt.Printf("✅ Removed %d manga, %d remaining\n", len(indices), len(kept))
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
