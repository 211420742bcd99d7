package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/data"
	"github.com/kerbaras/chaptercheck/pkg/services"
)

// ReleasesScreen drives the release scan and shows which tracked manga have
// a new chapter since the last check.
type ReleasesScreen struct {
	tracker  *services.Tracker
	sess     services.Session
	scanning bool
	scanned  bool
	tracked  int
	deltas   []data.ReleaseDelta
	width    int
	height   int
	err      error
}

func NewReleasesScreen(tracker *services.Tracker, sess services.Session) *ReleasesScreen {
	return &ReleasesScreen{tracker: tracker, sess: sess}
}

func (s *ReleasesScreen) Init() tea.Cmd {
	return nil
}

func (s *ReleasesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.scanning {
			return s, nil
		}
		if msg.String() == "s" || msg.String() == "enter" {
			s.scanning = true
			s.err = nil
			return s, s.scan
		}

	case scanDoneMsg:
		s.scanning = false
		s.scanned = true
		s.err = msg.err
		s.tracked = len(msg.updated)
		s.deltas = msg.deltas
	}

	return s, nil
}

func (s *ReleasesScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔔 New Releases")

	var body string
	switch {
	case s.scanning:
		body = styles.StatusLoading.Render("Checking for new chapters...")
	case s.err != nil:
		body = styles.StatusError.Render(fmt.Sprintf("Scan failed: %s", s.err))
	case !s.scanned:
		body = styles.MutedStyle.Render("Press s to check your list for new chapters")
	case s.tracked == 0:
		body = styles.MutedStyle.Render("Your list is empty. Add some manga first")
	case len(s.deltas) == 0:
		body = styles.SubtitleStyle.Render(fmt.Sprintf("No new releases across %d manga", s.tracked))
	default:
		body = s.renderDeltas()
	}

	help := styles.HelpStyle.Render("s/enter: scan • tab: switch view • ctrl+c: quit")

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, body, help)
}

func (s *ReleasesScreen) renderDeltas() string {
	heading := styles.StatusSuccess.Render(fmt.Sprintf("%d new release(s)!", len(s.deltas)))

	var cards string
	for _, delta := range s.deltas {
		title := styles.TitleStyle.Render(delta.Name)
		chapter := styles.TextStyle.Render(fmt.Sprintf("New chapter: %s", delta.NewChapter))
		card := styles.CardStyle.Width(s.width - 6).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, chapter),
		)
		cards += card + "\n"
	}

	return fmt.Sprintf("%s\n\n%s", heading, cards)
}

// Messages
type scanDoneMsg struct {
	updated []data.TrackedItem
	deltas  []data.ReleaseDelta
	err     error
}

// Commands
func (s *ReleasesScreen) scan() tea.Msg {
	updated, deltas, err := s.tracker.Scan(s.sess)
	return scanDoneMsg{updated: updated, deltas: deltas, err: err}
}
