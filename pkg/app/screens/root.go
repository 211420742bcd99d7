package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/services"
)

type screenType int

const (
	loginView screenType = iota
	libraryView
	searchView
	releasesView
)

// RootScreen owns the session and routes messages to the active sub-screen.
// Until login succeeds only the login screen exists; the per-user screens are
// created with the session once it is established.
type RootScreen struct {
	tracker *services.Tracker
	sess    *services.Session

	currentView screenType
	login       *LoginScreen
	library     *LibraryScreen
	search      *SearchScreen
	releases    *ReleasesScreen

	width  int
	height int
}

func NewRootScreen(tracker *services.Tracker) *RootScreen {
	return &RootScreen{
		tracker:     tracker,
		currentView: loginView,
		login:       NewLoginScreen(tracker),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.login.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "tab":
			if r.sess == nil {
				break
			}
			switch r.currentView {
			case libraryView:
				r.currentView = searchView
				cmd = r.search.Init()
			case searchView:
				r.currentView = releasesView
				cmd = r.releases.Init()
			case releasesView:
				r.currentView = libraryView
				cmd = r.library.Init()
			}
			return r, cmd
		}

	case LoginSuccessMsg:
		sess := msg.Session
		r.sess = &sess
		r.library = NewLibraryScreen(r.tracker, sess)
		r.search = NewSearchScreen(r.tracker, sess)
		r.releases = NewReleasesScreen(r.tracker, sess)
		r.currentView = libraryView
		return r, r.library.Init()
	}

	switch r.currentView {
	case loginView:
		newModel, newCmd := r.login.Update(msg)
		r.login = newModel.(*LoginScreen)
		return r, newCmd
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case releasesView:
		newModel, newCmd := r.releases.Update(msg)
		r.releases = newModel.(*ReleasesScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	if r.currentView == loginView {
		return r.login.View()
	}

	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case searchView:
		content = r.search.View()
	case releasesView:
		content = r.releases.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	names := []string{"My List", "Add Manga", "New Releases"}
	views := []screenType{libraryView, searchView, releasesView}

	rendered := make([]string, len(names))
	for i, name := range names {
		if r.currentView == views[i] {
			rendered[i] = styles.ActiveTabStyle.Render(name)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(name)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
