package sources

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kerbaras/chaptercheck/pkg/data"
)

// NoChapter is the chapter label used when the series page lists no release
// or its markup no longer matches the extraction markers. The two cases are
// indistinguishable on purpose; callers treat NoChapter as a legitimate
// chapter value and only ever compare it by equality.
const NoChapter = "N/A"

// Extraction markers for the series detail page. The chapter label sits in
// the italics that follow the "Latest Release" heading.
const (
	latestReleaseMarker = "Latest Release"
	chapterOpenMarker   = "c.<i>"
	chapterCloseMarker  = "</i>"
)

// Extraction markers for the restricted-search response, plus the site-name
// affixes the search sometimes wraps around a title.
const (
	linkMarker       = `"link":`
	idMarker         = "id="
	seriesMarker     = "series"
	titleOpenMarker  = `"title": "`
	titleCloseMarker = `",`
	siteSuffix       = " - Baka-Updates Manga"
	sitePrefix       = "Baka-Updates Manga - "
)

// MangaUpdatesConfig carries the endpoints and search credentials for a
// MangaUpdates source.
type MangaUpdatesConfig struct {
	SeriesURL      string
	SearchURL      string
	SearchKey      string
	SearchEngineID string
	Timeout        time.Duration
}

// MangaUpdates resolves titles and fetches latest chapters from
// mangaupdates.com. The site has no structured API, so both operations scan
// raw response text for fixed markers.
type MangaUpdates struct {
	client         *http.Client
	seriesURL      string
	searchURL      string
	searchKey      string
	searchEngineID string
}

// NewMangaUpdates creates a source with the production endpoints.
func NewMangaUpdates(key, engineID string) *MangaUpdates {
	return NewMangaUpdatesWithConfig(MangaUpdatesConfig{
		SeriesURL:      "https://www.mangaupdates.com/series.html",
		SearchURL:      "https://www.googleapis.com/customsearch/v1/siterestrict",
		SearchKey:      key,
		SearchEngineID: engineID,
		Timeout:        30 * time.Second,
	})
}

func NewMangaUpdatesWithConfig(cfg MangaUpdatesConfig) *MangaUpdates {
	return &MangaUpdates{
		client:         &http.Client{Timeout: cfg.Timeout},
		seriesURL:      cfg.SeriesURL,
		searchURL:      cfg.SearchURL,
		searchKey:      cfg.SearchKey,
		searchEngineID: cfg.SearchEngineID,
	}
}

// get fetches a URL and returns the raw response text. Network errors and
// non-2xx statuses are reported to the caller; they are never folded into
// the NoChapter sentinel.
func (m *MangaUpdates) get(rawURL string) (string, error) {
	resp, err := m.client.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request failed: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}

// LatestChapter fetches the series detail page for catalogID and extracts the
// chapter label following the "Latest Release" heading. A page without the
// expected markers yields NoChapter, never an error.
func (m *MangaUpdates) LatestChapter(catalogID string) (string, error) {
	body, err := m.get(fmt.Sprintf("%s?id=%s", m.seriesURL, catalogID))
	if err != nil {
		return "", fmt.Errorf("failed to fetch series %s: %w", catalogID, err)
	}

	anchor := strings.Index(body, latestReleaseMarker)
	if anchor < 0 {
		return NoChapter, nil
	}
	label, ok := ExtractBetween(body, chapterOpenMarker, chapterCloseMarker, anchor)
	if !ok {
		return NoChapter, nil
	}
	return label, nil
}

// Resolve maps a free-text query to a catalog entry via the restricted
// search endpoint, then fills in the current chapter via LatestChapter.
// Returns ErrNotFound when the response carries no usable series link.
func (m *MangaUpdates) Resolve(query string) (*data.CatalogEntry, error) {
	params := url.Values{}
	params.Set("key", m.searchKey)
	params.Set("cx", m.searchEngineID)
	params.Set("num", "1")
	params.Set("fields", "items(title, link)")
	params.Set("q", query)

	body, err := m.get(m.searchURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	linkIdx := strings.Index(body, linkMarker)
	if linkIdx < 0 {
		return nil, ErrNotFound
	}
	tail := body[linkIdx:]
	if !strings.Contains(tail, seriesMarker) || !strings.Contains(tail, idMarker) {
		return nil, ErrNotFound
	}

	id := digitRun(body, strings.Index(body, idMarker)+len(idMarker))

	title, ok := ExtractBetween(body, titleOpenMarker, titleCloseMarker, 0)
	if !ok {
		return nil, ErrNotFound
	}
	title = strings.TrimSuffix(title, siteSuffix)
	title = strings.TrimPrefix(title, sitePrefix)

	chapter, err := m.LatestChapter(id)
	if err != nil {
		return nil, err
	}

	return &data.CatalogEntry{
		CatalogID:      id,
		Title:          title,
		CurrentChapter: chapter,
	}, nil
}
