package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/data"
)

// TrackList renders a user's tracked manga as a navigable card list with
// checkbox-style marking for bulk removal.
type TrackList struct {
	Items         []data.TrackedItem
	SelectedIndex int
	Marked        map[int]bool
	Width         int
	Height        int
}

func NewTrackList() *TrackList {
	return &TrackList{
		Items:         []data.TrackedItem{},
		SelectedIndex: 0,
		Marked:        map[int]bool{},
		Width:         80,
		Height:        20,
	}
}

// SetItems replaces the list contents. Marks are cleared because they refer
// to positions in the old list.
func (l *TrackList) SetItems(items []data.TrackedItem) {
	l.Items = items
	l.Marked = map[int]bool{}
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *TrackList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *TrackList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

// ToggleMark flips the mark on the highlighted item.
func (l *TrackList) ToggleMark() {
	if len(l.Items) == 0 {
		return
	}
	if l.Marked[l.SelectedIndex] {
		delete(l.Marked, l.SelectedIndex)
	} else {
		l.Marked[l.SelectedIndex] = true
	}
}

// MarkedIndices returns the marked positions in ascending order.
func (l *TrackList) MarkedIndices() []int {
	var indices []int
	for i := range l.Items {
		if l.Marked[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

func (l *TrackList) Selected() *data.TrackedItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *TrackList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No manga on your list")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		check := "[ ]"
		if l.Marked[i] {
			check = "[x]"
		}

		title := styles.TitleStyle.Render(fmt.Sprintf("%s %s", check, item.Name))
		chapter := styles.TextStyle.Render(fmt.Sprintf("Last chapter: %s", item.LastChapter))
		id := styles.MutedStyle.Render(fmt.Sprintf("ID: %s", item.CatalogID))

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			chapter,
			id,
		)

		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
