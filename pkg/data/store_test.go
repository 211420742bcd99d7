package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := OpenStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenStoreRejectsSecondLock(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = OpenStore(dir)
	assert.ErrorIs(t, err, ErrStoreLocked)
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	store := newTestStore(t)

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestAppendCredentialRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendCredential(Credential{Username: "alice", Password: "pw1"}))
	require.NoError(t, store.AppendCredential(Credential{Username: "bob", Password: "pw2"}))

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, Credential{Username: "alice", Password: "pw1"}, creds[0])
	assert.Equal(t, Credential{Username: "bob", Password: "pw2"}, creds[1])
}

func TestAppendCredentialKeepsEarlierRecords(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendCredential(Credential{Username: "alice", Password: "pw1"}))
	before, err := store.LoadCredentials()
	require.NoError(t, err)

	require.NoError(t, store.AppendCredential(Credential{Username: "carol", Password: "pw3"}))
	after, err := store.LoadCredentials()
	require.NoError(t, err)

	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, Credential{Username: "carol", Password: "pw3"}, after[len(after)-1])
}

func TestFindCredential(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AppendCredential(Credential{Username: "alice", Password: "pw1"}))

	t.Run("found", func(t *testing.T) {
		cred, err := store.FindCredential("alice")
		require.NoError(t, err)
		assert.Equal(t, "pw1", cred.Password)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.FindCredential("mallory")
		assert.ErrorIs(t, err, ErrUnknownUser)
	})
}

func TestLoadCredentialsMalformedLine(t *testing.T) {
	store := newTestStore(t)
	err := os.WriteFile(store.credentialsPath(), []byte("alice|pw1\nbroken\n"), 0644)
	require.NoError(t, err)

	_, err = store.LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}

func TestLoadUserItemsMissingFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadUserItems("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCreateUserFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateUserFile("alice"))

	items, err := store.LoadUserItems("alice")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRewriteUserItemsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateUserFile("alice"))

	items := []TrackedItem{
		{CatalogID: "100", Name: "Foo", LastChapter: "10"},
		{CatalogID: "200", Name: "Bar", LastChapter: "N/A"},
	}
	require.NoError(t, store.RewriteUserItems("alice", items))

	got, err := store.LoadUserItems("alice")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestRewriteUserItemsTruncates(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateUserFile("alice"))
	require.NoError(t, store.RewriteUserItems("alice", []TrackedItem{
		{CatalogID: "100", Name: "Foo", LastChapter: "10"},
		{CatalogID: "200", Name: "Bar", LastChapter: "3"},
	}))

	require.NoError(t, store.RewriteUserItems("alice", []TrackedItem{
		{CatalogID: "200", Name: "Bar", LastChapter: "4"},
	}))

	got, err := store.LoadUserItems("alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, TrackedItem{CatalogID: "200", Name: "Bar", LastChapter: "4"}, got[0])
}

func TestRewriteUserItemsLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateUserFile("alice"))
	require.NoError(t, store.RewriteUserItems("alice", []TrackedItem{
		{CatalogID: "100", Name: "Foo", LastChapter: "10"},
	}))

	matches, err := filepath.Glob(filepath.Join(store.dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLoadUserItemsLegacyTrailingFields(t *testing.T) {
	store := newTestStore(t)
	err := os.WriteFile(store.userPath("alice"), []byte("100|Foo|extra|10\n"), 0644)
	require.NoError(t, err)

	items, err := store.LoadUserItems("alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100", items[0].CatalogID)
	assert.Equal(t, "10", items[0].LastChapter)
}

func TestLoadUserItemsMalformedLine(t *testing.T) {
	store := newTestStore(t)
	err := os.WriteFile(store.userPath("alice"), []byte("100|Foo|10\n200|Bar\n"), 0644)
	require.NoError(t, err)

	_, err = store.LoadUserItems("alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}
