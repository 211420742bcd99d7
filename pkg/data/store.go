package data

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const (
	credentialsFile = "credentials_list.txt"
	lockFile        = "chaptercheck.lock"
)

// ErrStoreLocked is returned by OpenStore when another process already holds
// the data directory.
var ErrStoreLocked = errors.New("data directory is locked by another process")

// ErrUnknownUser is returned by FindCredential when no record matches the
// username.
var ErrUnknownUser = errors.New("unknown user")

// Store reads and writes the flat-file records backing ChapterCheck: one
// credentials file plus one tracking-list file per user, all newline-delimited
// with '|'-separated fields. Fields must not themselves contain '|' or a
// newline; the format does no escaping.
//
// The store assumes a single process. An exclusive flock on the data
// directory enforces that.
type Store struct {
	dir  string
	lock *flock.Flock
}

// OpenStore creates the data directory if needed and takes the process lock.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	fl := flock.New(filepath.Join(dir, lockFile))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock data directory: %w", err)
	}
	if !locked {
		return nil, ErrStoreLocked
	}

	return &Store{dir: dir, lock: fl}, nil
}

// Close releases the process lock.
func (s *Store) Close() error {
	return s.lock.Unlock()
}

func (s *Store) credentialsPath() string {
	return filepath.Join(s.dir, credentialsFile)
}

func (s *Store) userPath(username string) string {
	return filepath.Join(s.dir, username+".txt")
}

// LoadCredentials parses the credentials file in record order. A missing file
// means no users have signed up yet and yields an empty slice; the file is
// created by the first AppendCredential.
func (s *Store) LoadCredentials() ([]Credential, error) {
	f, err := os.Open(s.credentialsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	var creds []Credential
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "|")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: malformed credential record (%d fields)", credentialsFile, line, len(fields))
		}
		creds = append(creds, Credential{Username: fields[0], Password: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return creds, nil
}

// FindCredential scans the credentials file for username. First match wins.
// Returns ErrUnknownUser when no record matches.
func (s *Store) FindCredential(username string) (*Credential, error) {
	creds, err := s.LoadCredentials()
	if err != nil {
		return nil, err
	}
	for i := range creds {
		if creds[i].Username == username {
			return &creds[i], nil
		}
	}
	return nil, ErrUnknownUser
}

// AppendCredential writes one credential record to the end of the file,
// creating it if absent. It does not check for duplicates; callers only
// append after FindCredential reported ErrUnknownUser.
func (s *Store) AppendCredential(c Credential) error {
	f, err := os.OpenFile(s.credentialsPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s|%s\n", c.Username, c.Password); err != nil {
		return fmt.Errorf("failed to append credential: %w", err)
	}
	return nil
}

// CreateUserFile creates the zero-length file backing a new user's tracking
// list. An existing file is truncated, so this must only run at signup.
func (s *Store) CreateUserFile(username string) error {
	f, err := os.Create(s.userPath(username))
	if err != nil {
		return fmt.Errorf("failed to create list file for %q: %w", username, err)
	}
	return f.Close()
}

// LoadUserItems parses a user's tracking list in record order. A missing file
// means the signup invariant was broken and is reported as an error (wrapping
// os.ErrNotExist), unlike the credentials bootstrap case.
//
// Records carry catalogId|name|lastChapter. Extra trailing fields are
// tolerated for legacy records; the chapter is always the last field.
func (s *Store) LoadUserItems(username string) ([]TrackedItem, error) {
	f, err := os.Open(s.userPath(username))
	if err != nil {
		return nil, fmt.Errorf("failed to open list for %q: %w", username, err)
	}
	defer f.Close()

	var items []TrackedItem
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "|")
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s.txt:%d: malformed list record (%d fields)", username, line, len(fields))
		}
		items = append(items, TrackedItem{
			CatalogID:   fields[0],
			Name:        fields[1],
			LastChapter: fields[len(fields)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list for %q: %w", username, err)
	}
	return items, nil
}

// RewriteUserItems replaces a user's tracking list wholesale. This is the
// sole mutation path for lists: add, remove and scan all materialize the full
// list and write it back. The write goes to a temp file first and is renamed
// into place, so the old list stays intact if the write dies partway.
func (s *Store) RewriteUserItems(username string, items []TrackedItem) error {
	tmp, err := os.CreateTemp(s.dir, username+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp list for %q: %w", username, err)
	}
	defer os.Remove(tmp.Name())

	for _, item := range items {
		if _, err := fmt.Fprintf(tmp, "%s|%s|%s\n", item.CatalogID, item.Name, item.LastChapter); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write list for %q: %w", username, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write list for %q: %w", username, err)
	}

	if err := os.Rename(tmp.Name(), s.userPath(username)); err != nil {
		return fmt.Errorf("failed to replace list for %q: %w", username, err)
	}
	return nil
}
