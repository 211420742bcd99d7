package screens

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/chaptercheck/pkg/app/styles"
	"github.com/kerbaras/chaptercheck/pkg/services"
)

type LoginScreen struct {
	tracker     *services.Tracker
	username    textinput.Model
	password    textinput.Model
	focus       int
	offerSignup bool
	status      string
	width       int
	height      int
}

func NewLoginScreen(tracker *services.Tracker) *LoginScreen {
	user := textinput.New()
	user.Placeholder = "Username"
	user.Focus()
	user.CharLimit = 50
	user.Width = 30

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 50
	pass.Width = 30

	return &LoginScreen{
		tracker:  tracker,
		username: user,
		password: pass,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LoginScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.offerSignup {
			switch msg.String() {
			case "y", "Y":
				return s, s.signup(s.username.Value(), s.password.Value())
			case "n", "N", "esc":
				s.offerSignup = false
				s.status = ""
			}
			return s, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			s.switchFocus()
			return s, textinput.Blink
		case "enter":
			if s.focus == 0 {
				s.switchFocus()
				return s, textinput.Blink
			}
			return s, s.attemptLogin(s.username.Value(), s.password.Value())
		}

	case loginAttemptMsg:
		if msg.err != nil {
			if errors.Is(msg.err, services.ErrInvalidCredentials) {
				s.status = "Username and password must contain only letters and digits"
				s.password.SetValue("")
				return s, nil
			}
			s.status = fmt.Sprintf("Login failed: %s", msg.err)
			return s, nil
		}
		switch msg.result {
		case services.LoginCorrect:
			sess := services.Session{Username: s.username.Value()}
			return s, func() tea.Msg { return LoginSuccessMsg{Session: sess} }
		case services.LoginIncorrect:
			s.status = "Incorrect password"
			s.password.SetValue("")
		case services.LoginNewUser:
			s.offerSignup = true
			s.status = fmt.Sprintf("No account named %q. Create one? (y/n)", s.username.Value())
		}
		return s, nil

	case signupResultMsg:
		s.offerSignup = false
		if msg.err != nil {
			s.status = fmt.Sprintf("Signup failed: %s", msg.err)
			return s, nil
		}
		return s, func() tea.Msg { return LoginSuccessMsg{Session: *msg.sess} }
	}

	if s.focus == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) switchFocus() {
	if s.focus == 0 {
		s.focus = 1
		s.username.Blur()
		s.password.Focus()
	} else {
		s.focus = 0
		s.password.Blur()
		s.username.Focus()
	}
}

func (s *LoginScreen) View() string {
	header := styles.TitleStyle.Render("📖 ChapterCheck")

	userStyle := styles.InputStyle
	passStyle := styles.InputStyle
	if s.focus == 0 {
		userStyle = styles.FocusedInputStyle
	} else {
		passStyle = styles.FocusedInputStyle
	}

	var statusLine string
	if s.status != "" {
		style := styles.StatusError
		if s.offerSignup {
			style = styles.SubtitleStyle
		}
		statusLine = style.Render(s.status) + "\n\n"
	}

	help := styles.HelpStyle.Render("tab: switch field • enter: log in • ctrl+c: quit")

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s%s",
		header,
		userStyle.Render(s.username.View()),
		passStyle.Render(s.password.View()),
		statusLine,
		help,
	)
}

// Messages
type loginAttemptMsg struct {
	result services.LoginResult
	err    error
}

type signupResultMsg struct {
	sess *services.Session
	err  error
}

// LoginSuccessMsg tells the root screen a session is active.
type LoginSuccessMsg struct {
	Session services.Session
}

// Commands
func (s *LoginScreen) attemptLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := s.tracker.Login(username, password)
		return loginAttemptMsg{result: result, err: err}
	}
}

func (s *LoginScreen) signup(username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := s.tracker.Signup(username, password)
		return signupResultMsg{sess: sess, err: err}
	}
}
