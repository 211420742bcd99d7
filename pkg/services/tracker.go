package services

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/kerbaras/chaptercheck/pkg/config"
	"github.com/kerbaras/chaptercheck/pkg/data"
	"github.com/kerbaras/chaptercheck/pkg/sources"
)

// LoginResult is the outcome of a credentials check.
type LoginResult int

const (
	// LoginNewUser means the username has no record yet; the caller may
	// offer signup.
	LoginNewUser LoginResult = iota
	LoginCorrect
	LoginIncorrect
)

var (
	// ErrInvalidCredentials rejects usernames or passwords containing
	// anything but letters and digits. The username doubles as a file name
	// and both fields are stored in a '|'-delimited format, so the
	// restriction is load-bearing, not cosmetic.
	ErrInvalidCredentials = errors.New("username and password must be alphanumeric")

	// ErrUserExists rejects a signup for a username that already has a
	// credential record.
	ErrUserExists = errors.New("user already exists")

	// ErrDuplicateItem rejects tracking the same catalog ID twice on one
	// list.
	ErrDuplicateItem = errors.New("manga is already on the list")

	// ErrNoSelection distinguishes a removal with nothing selected from a
	// successful removal.
	ErrNoSelection = errors.New("no items selected")
)

// Session identifies the active user. It is created by Login/Signup and
// threaded through every per-user call; the tracker itself keeps no notion of
// a current user.
type Session struct {
	Username string
}

// Store is the record-store surface the tracker needs.
type Store interface {
	FindCredential(username string) (*data.Credential, error)
	AppendCredential(c data.Credential) error
	CreateUserFile(username string) error
	LoadUserItems(username string) ([]data.TrackedItem, error)
	RewriteUserItems(username string, items []data.TrackedItem) error
}

// Tracker is the controller behind every user-facing flow: login and signup,
// list display, title resolution, add, remove, and the release scan.
type Tracker struct {
	store  Store
	source sources.Source
	logger *slog.Logger
}

func NewTracker(store Store, source sources.Source, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = config.NullLogger()
	}
	return &Tracker{store: store, source: source, logger: logger}
}

func alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Login checks a username/password pair against the credentials store.
// An unknown username is reported as LoginNewUser so the caller can offer
// signup; it is not an error.
func (t *Tracker) Login(username, password string) (LoginResult, error) {
	if !alphanumeric(username) || !alphanumeric(password) {
		return 0, ErrInvalidCredentials
	}

	cred, err := t.store.FindCredential(username)
	if errors.Is(err, data.ErrUnknownUser) {
		return LoginNewUser, nil
	}
	if err != nil {
		return 0, err
	}

	if cred.Password == password {
		t.logger.Info("login", "user", username)
		return LoginCorrect, nil
	}
	return LoginIncorrect, nil
}

// Signup records a new credential and creates the user's empty tracking
// list. Callers reach this only after Login reported LoginNewUser.
func (t *Tracker) Signup(username, password string) (*Session, error) {
	if !alphanumeric(username) || !alphanumeric(password) {
		return nil, ErrInvalidCredentials
	}

	_, err := t.store.FindCredential(username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, data.ErrUnknownUser) {
		return nil, err
	}

	if err := t.store.AppendCredential(data.Credential{Username: username, Password: password}); err != nil {
		return nil, err
	}
	if err := t.store.CreateUserFile(username); err != nil {
		return nil, err
	}

	t.logger.Info("signup", "user", username)
	return &Session{Username: username}, nil
}

// ListItems returns the session user's tracking list in stored order.
func (t *Tracker) ListItems(sess Session) ([]data.TrackedItem, error) {
	return t.store.LoadUserItems(sess.Username)
}

// Resolve maps a free-text title to a catalog entry. sources.ErrNotFound
// passes through as the no-result outcome.
func (t *Tracker) Resolve(query string) (*data.CatalogEntry, error) {
	entry, err := t.source.Resolve(query)
	if err != nil {
		return nil, err
	}
	t.logger.Info("resolved title", "query", query, "id", entry.CatalogID, "title", entry.Title)
	return entry, nil
}

// AddItem appends a resolved catalog entry to the session user's list.
// Tracking the same catalog ID twice is rejected with ErrDuplicateItem.
func (t *Tracker) AddItem(sess Session, entry data.CatalogEntry) error {
	items, err := t.store.LoadUserItems(sess.Username)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.CatalogID == entry.CatalogID {
			return ErrDuplicateItem
		}
	}

	items = append(items, data.TrackedItem{
		CatalogID:   entry.CatalogID,
		Name:        entry.Title,
		LastChapter: entry.CurrentChapter,
	})
	if err := t.store.RewriteUserItems(sess.Username, items); err != nil {
		return err
	}

	t.logger.Info("added manga", "user", sess.Username, "id", entry.CatalogID, "title", entry.Title)
	return nil
}

// RemoveItems drops the items at the selected positions from the session
// user's list, preserving the relative order of the rest, and returns the
// remaining list. An empty selection is ErrNoSelection rather than a silent
// success.
func (t *Tracker) RemoveItems(sess Session, selected []int) ([]data.TrackedItem, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	items, err := t.store.LoadUserItems(sess.Username)
	if err != nil {
		return nil, err
	}

	drop := make(map[int]bool, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(items) {
			return nil, fmt.Errorf("selection index %d out of range", idx)
		}
		drop[idx] = true
	}

	kept := make([]data.TrackedItem, 0, len(items)-len(drop))
	for i, item := range items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}

	if err := t.store.RewriteUserItems(sess.Username, kept); err != nil {
		return nil, err
	}

	t.logger.Info("removed manga", "user", sess.Username, "count", len(drop))
	return kept, nil
}

// Scan fetches the latest chapter for every tracked item, refreshes the
// stored list to the fetched values, and reports the items whose chapter
// changed. Chapters are opaque labels compared by string equality.
//
// Fetches run sequentially, and the list is persisted exactly once, after
// every fetch succeeded. If any fetch fails the scan aborts: nothing is
// persisted and the error is returned.
func (t *Tracker) Scan(sess Session) ([]data.TrackedItem, []data.ReleaseDelta, error) {
	items, err := t.store.LoadUserItems(sess.Username)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, nil
	}

	updated := make([]data.TrackedItem, 0, len(items))
	var deltas []data.ReleaseDelta
	for _, item := range items {
		latest, err := t.source.LatestChapter(item.CatalogID)
		if err != nil {
			return nil, nil, fmt.Errorf("scan aborted at %q: %w", item.Name, err)
		}
		updated = append(updated, data.TrackedItem{
			CatalogID:   item.CatalogID,
			Name:        item.Name,
			LastChapter: latest,
		})
		if latest != item.LastChapter {
			deltas = append(deltas, data.ReleaseDelta{Name: item.Name, NewChapter: latest})
		}
	}

	if err := t.store.RewriteUserItems(sess.Username, updated); err != nil {
		return nil, nil, err
	}

	t.logger.Info("scan complete", "user", sess.Username, "items", len(updated), "new", len(deltas))
	return updated, deltas, nil
}
