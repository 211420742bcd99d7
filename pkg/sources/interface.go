package sources

import (
	"errors"

	"github.com/kerbaras/chaptercheck/pkg/data"
)

// ErrNotFound means a search produced no usable catalog entry. It is a normal
// outcome of Resolve, not a transport failure.
var ErrNotFound = errors.New("no catalog entry found")

// Source resolves free-text titles against a manga catalog and reports the
// latest published chapter for a catalog ID.
type Source interface {
	Resolve(query string) (*data.CatalogEntry, error)
	LatestChapter(catalogID string) (string, error)
}
