package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/chaptercheck/pkg/data"
)

func sampleItems() []data.TrackedItem {
	return []data.TrackedItem{
		{CatalogID: "100", Name: "Foo", LastChapter: "10"},
		{CatalogID: "200", Name: "Bar", LastChapter: "3"},
		{CatalogID: "300", Name: "Baz", LastChapter: "N/A"},
	}
}

func TestNewTrackList(t *testing.T) {
	list := NewTrackList()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsResetsSelectionAndMarks(t *testing.T) {
	list := NewTrackList()
	list.SetItems(sampleItems())
	list.SelectedIndex = 2
	list.ToggleMark()

	list.SetItems(sampleItems()[:1])

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex reset to 0, got %d", list.SelectedIndex)
	}
	if len(list.MarkedIndices()) != 0 {
		t.Errorf("Expected marks cleared, got %v", list.MarkedIndices())
	}
}

func TestNavigationWrapsAround(t *testing.T) {
	list := NewTrackList()
	list.SetItems(sampleItems())

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Prev from 0 should wrap to 2, got %d", list.SelectedIndex)
	}
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Next from 2 should wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestNavigationOnEmptyList(t *testing.T) {
	list := NewTrackList()

	list.Next()
	list.Prev()
	list.ToggleMark()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0 on empty list, got %d", list.SelectedIndex)
	}
	if list.Selected() != nil {
		t.Error("Selected() on empty list should be nil")
	}
}

func TestToggleMark(t *testing.T) {
	list := NewTrackList()
	list.SetItems(sampleItems())

	list.ToggleMark()
	list.Next()
	list.Next()
	list.ToggleMark()

	indices := list.MarkedIndices()
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 2 {
		t.Errorf("Expected marked [0 2], got %v", indices)
	}

	list.ToggleMark()
	indices = list.MarkedIndices()
	if len(indices) != 1 || indices[0] != 0 {
		t.Errorf("Expected marked [0] after untoggle, got %v", indices)
	}
}

func TestViewShowsCheckboxes(t *testing.T) {
	list := NewTrackList()
	list.SetItems(sampleItems())
	list.ToggleMark()

	view := list.View()
	if !strings.Contains(view, "[x] Foo") {
		t.Error("Expected marked item rendered with [x]")
	}
	if !strings.Contains(view, "[ ] Bar") {
		t.Error("Expected unmarked item rendered with [ ]")
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewTrackList()

	view := list.View()
	if !strings.Contains(view, "No manga on your list") {
		t.Error("Expected empty-list message")
	}
}
