package screens

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/chaptercheck/pkg/app/components"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/data"
	"github.com/kerbaras/chaptercheck/pkg/services"
)

type LibraryScreen struct {
	tracker   *services.Tracker
	sess      services.Session
	trackList *components.TrackList
	status    string
	width     int
	height    int
	err       error
}

func NewLibraryScreen(tracker *services.Tracker, sess services.Session) *LibraryScreen {
	return &LibraryScreen{
		tracker:   tracker,
		sess:      sess,
		trackList: components.NewTrackList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadList
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.trackList.Width = msg.Width - 4
		s.trackList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.trackList.Prev()
		case "down", "j":
			s.trackList.Next()
		case " ":
			s.trackList.ToggleMark()
			s.status = ""
		case "d":
			return s, s.removeMarked(s.trackList.MarkedIndices())
		case "r":
			return s, s.loadList
		}

	case listLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.trackList.SetItems(msg.items)
		}

	case itemsRemovedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, services.ErrNoSelection) {
				s.status = "Nothing selected. Mark items with space first"
				return s, nil
			}
			s.err = msg.err
			return s, nil
		}
		s.status = fmt.Sprintf("Removed %d manga", msg.removed)
		s.trackList.SetItems(msg.kept)
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 My Manga List")

	var notice string
	if s.err != nil {
		notice = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.status != "" {
		notice = styles.SubtitleStyle.Render(s.status) + "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • space: mark • d: remove marked • r: refresh • tab: switch view • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, notice, s.trackList.View(), help)
}

// Messages
type listLoadedMsg struct {
	items []data.TrackedItem
	err   error
}

type itemsRemovedMsg struct {
	kept    []data.TrackedItem
	removed int
	err     error
}

// Commands
func (s *LibraryScreen) loadList() tea.Msg {
	items, err := s.tracker.ListItems(s.sess)
	return listLoadedMsg{items: items, err: err}
}

func (s *LibraryScreen) removeMarked(indices []int) tea.Cmd {
	return func() tea.Msg {
		kept, err := s.tracker.RemoveItems(s.sess, indices)
		return itemsRemovedMsg{kept: kept, removed: len(indices), err: err}
	}
}
