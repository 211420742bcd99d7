package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your tracked manga",
	Long:  "Display your tracking list in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		tracker, cleanup := buildTracker()
		defer cleanup()
		sess := requireSession(tracker)

		items, err := tracker.ListItems(sess)
		cobra.CheckErr(err)

		if len(items) == 0 {
			fmt.Println("📚 Your list is empty. Use 'chaptercheck add' to track a manga.")
			return
		}

		columns := []table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 40},
			{Title: "Last Chapter", Width: 14},
			{Title: "ID", Width: 10},
		}

		rows := []table.Row{}
		for i, item := range items {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				truncateString(item.Name, 38),
				item.LastChapter,
				item.CatalogID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 %s's list (%d manga)\n\n", sess.Username, len(items))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
