package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/data"
	"github.com/kerbaras/chaptercheck/pkg/services"
	"github.com/kerbaras/chaptercheck/pkg/sources"
)

// SearchScreen resolves a free-text title and asks for confirmation before
// the result lands on the user's list.
type SearchScreen struct {
	tracker   *services.Tracker
	sess      services.Session
	input     textinput.Model
	searching bool
	candidate *data.CatalogEntry
	status    string
	width     int
	height    int
	err       error
}

func NewSearchScreen(tracker *services.Tracker, sess services.Session) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search manga..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		tracker: tracker,
		sess:    sess,
		input:   ti,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.searching {
			return s, nil
		}

		// Confirmation step: a candidate is pending until the user decides.
		if s.candidate != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				return s, s.addCandidate(*s.candidate)
			case "n", "N", "esc":
				s.candidate = nil
				s.status = "Cancelled"
				s.input.Focus()
				return s, textinput.Blink
			}
			return s, nil
		}

		if msg.String() == "enter" {
			query := s.input.Value()
			if query != "" {
				s.searching = true
				s.status = ""
				s.err = nil
				return s, s.resolve(query)
			}
		}

	case titleResolvedMsg:
		s.searching = false
		if msg.err != nil {
			if errors.Is(msg.err, sources.ErrNotFound) {
				s.status = "No results found"
				return s, nil
			}
			s.err = msg.err
			return s, nil
		}
		s.candidate = msg.entry
		s.input.Blur()

	case itemAddedMsg:
		s.candidate = nil
		s.input.Focus()
		if msg.err != nil {
			if errors.Is(msg.err, services.ErrDuplicateItem) {
				s.status = "Already on your list"
				return s, textinput.Blink
			}
			s.err = msg.err
			return s, textinput.Blink
		}
		s.status = fmt.Sprintf("Added %q", msg.name)
		s.input.SetValue("")
		return s, textinput.Blink
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Add Manga")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var body string
	switch {
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	case s.searching:
		body = styles.StatusLoading.Render("Searching...")
	case s.candidate != nil:
		body = s.renderCandidate()
	case s.status != "":
		body = styles.SubtitleStyle.Render(s.status)
	}

	help := styles.HelpStyle.Render("enter: search • tab: switch view • ctrl+c: quit")
	if s.candidate != nil {
		help = styles.HelpStyle.Render("y/enter: add to list • n/esc: cancel")
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", header, inputView, body, help)
}

func (s *SearchScreen) renderCandidate() string {
	title := styles.TitleStyle.Render(s.candidate.Title)
	chapter := styles.TextStyle.Render(fmt.Sprintf("Current chapter: %s", s.candidate.CurrentChapter))
	id := styles.MutedStyle.Render(fmt.Sprintf("ID: %s", s.candidate.CatalogID))
	question := styles.SubtitleStyle.Render("Add this manga to your list?")

	card := styles.ActiveCardStyle.Width(s.width - 6).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, chapter, id),
	)
	return fmt.Sprintf("%s\n%s", card, question)
}

// Messages
type titleResolvedMsg struct {
	entry *data.CatalogEntry
	err   error
}

type itemAddedMsg struct {
	name string
	err  error
}

// Commands
func (s *SearchScreen) resolve(query string) tea.Cmd {
	return func() tea.Msg {
		entry, err := s.tracker.Resolve(query)
		return titleResolvedMsg{entry: entry, err: err}
	}
}

func (s *SearchScreen) addCandidate(entry data.CatalogEntry) tea.Cmd {
	return func() tea.Msg {
		err := s.tracker.AddItem(s.sess, entry)
		return itemAddedMsg{name: entry.Title, err: err}
	}
}
