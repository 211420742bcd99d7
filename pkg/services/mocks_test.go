package services

import (
	"github.com/kerbaras/chaptercheck/pkg/data"
)

type mockSource struct {
	resolveFunc func(query string) (*data.CatalogEntry, error)
	latestFunc  func(catalogID string) (string, error)
}

func (m *mockSource) Resolve(query string) (*data.CatalogEntry, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(query)
	}
	return nil, nil
}

func (m *mockSource) LatestChapter(catalogID string) (string, error) {
	if m.latestFunc != nil {
		return m.latestFunc(catalogID)
	}
	return "N/A", nil
}

type mockStore struct {
	findCredentialFunc   func(username string) (*data.Credential, error)
	appendCredentialFunc func(c data.Credential) error
	createUserFileFunc   func(username string) error
	loadUserItemsFunc    func(username string) ([]data.TrackedItem, error)
	rewriteUserItemsFunc func(username string, items []data.TrackedItem) error
}

func (m *mockStore) FindCredential(username string) (*data.Credential, error) {
	if m.findCredentialFunc != nil {
		return m.findCredentialFunc(username)
	}
	return nil, data.ErrUnknownUser
}

func (m *mockStore) AppendCredential(c data.Credential) error {
	if m.appendCredentialFunc != nil {
		return m.appendCredentialFunc(c)
	}
	return nil
}

func (m *mockStore) CreateUserFile(username string) error {
	if m.createUserFileFunc != nil {
		return m.createUserFileFunc(username)
	}
	return nil
}

func (m *mockStore) LoadUserItems(username string) ([]data.TrackedItem, error) {
	if m.loadUserItemsFunc != nil {
		return m.loadUserItemsFunc(username)
	}
	return nil, nil
}

func (m *mockStore) RewriteUserItems(username string, items []data.TrackedItem) error {
	if m.rewriteUserItemsFunc != nil {
		return m.rewriteUserItemsFunc(username, items)
	}
	return nil
}
