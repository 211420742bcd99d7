package data

// Credential is a username/password pair from the credentials store. Both
// fields are alphanumeric only; usernames are unique by convention.
type Credential struct {
	Username string
	Password string
}

// TrackedItem is one manga on a user's tracking list. LastChapter is an
// opaque label ("N/A" when the catalog lists no release) and is only ever
// compared by string equality.
type TrackedItem struct {
	CatalogID   string
	Name        string
	LastChapter string
}

// CatalogEntry is a resolved search result: the catalog's canonical title
// and numeric ID for a free-text query, plus the chapter currently listed.
type CatalogEntry struct {
	CatalogID      string
	Title          string
	CurrentChapter string
}

// ReleaseDelta reports one tracked manga whose fetched chapter differs from
// the stored one.
type ReleaseDelta struct {
	Name       string
	NewChapter string
}
