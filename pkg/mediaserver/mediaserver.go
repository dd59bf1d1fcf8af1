// Package mediaserver implements the HTTP client that talks to the remote
// media server (Plex-compatible library/metadata surface).
package mediaserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	ihttp "github.com/ingestd/catalogsync/pkg/http"
	"github.com/ingestd/catalogsync/pkg/ingestmap"
	"github.com/ingestd/catalogsync/pkg/pagination"
)

const (
	// DefaultTimeout is the per-request timeout (spec: 20s default).
	DefaultTimeout = 20 * time.Second

	// TypeMovie and TypeEpisode are the remote server's section item type codes.
	TypeMovie   = 1
	TypeEpisode = 4
)

// Library is one section reported by GET /library/sections.
type Library struct {
	Key       string
	Title     string
	Type      string
	Locations []string
}

// ItemsPage is one page of iter_items results, with the pagination window
// it was fetched with attached so callers can decide whether to continue.
type ItemsPage struct {
	Items []ingestmap.RemoteItem
	Meta  pagination.Meta
}

// ExternalClient is the contract the Orchestrator drives. Every method
// accepts a context; an HTTP call is a cancellation point per the
// concurrency model.
type ExternalClient interface {
	GetLibraries(ctx context.Context) ([]Library, error)
	IterItems(ctx context.Context, libraryKey string, kind string, page pagination.Params, sinceEpoch *int64) (ItemsPage, error)
	GetItemDetails(ctx context.Context, ratingKey string) (ingestmap.RemoteItem, error)
	GetShowChildren(ctx context.Context, showKey string) ([]ingestmap.RemoteItem, error)
	GetSeasonChildren(ctx context.Context, seasonKey string) ([]ingestmap.RemoteItem, error)
	TestConnection(ctx context.Context) bool
}

var _ ExternalClient = (*Client)(nil)

// Client is the default ExternalClient, backed by a RateLimitedClient so
// 429/5xx responses are retried with backoff automatically.
type Client struct {
	baseURL string
	token   string
	doer    *ihttp.RateLimitedClient
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithDoer overrides the underlying RateLimitedClient, primarily for tests.
func WithDoer(doer *ihttp.RateLimitedClient) Option {
	return func(c *Client) { c.doer = doer }
}

// New builds a Client for a remote media server at baseURL, authenticating
// every request with token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		doer:    ihttp.NewRateLimitedHTTPClient(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newRequest builds a GET request against path, bound to a child context
// with the client's per-request timeout. The returned cancel func must be
// called by the caller once the response body has been fully read.
func (c *Client) newRequest(ctx context.Context, path string, query map[string]string) (*http.Request, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("mediaserver: building request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json, application/xml;q=0.9")

	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	return req, cancel, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mediaserver: request to %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		return nil, fmt.Errorf("mediaserver: authentication rejected (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("mediaserver: unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}
	return resp, nil
}

// mediaContainer is the common envelope every library/metadata endpoint
// wraps its payload in, whether decoded from JSON or XML.
type mediaContainer struct {
	MediaContainer struct {
		TotalSize int               `json:"totalSize" xml:"totalSize,attr"`
		Directory []directoryEntry  `json:"Directory" xml:"Directory"`
		Metadata  []ingestmap.RemoteItem `json:"Metadata" xml:"Metadata"`
	} `json:"MediaContainer" xml:"MediaContainer"`
}

type directoryEntry struct {
	Key      string           `json:"key" xml:"key,attr"`
	Title    string           `json:"title" xml:"title,attr"`
	Type     string           `json:"type" xml:"type,attr"`
	Location []locationEntry  `json:"Location" xml:"Location"`
}

type locationEntry struct {
	Path string `json:"path" xml:"path,attr"`
}

// GetLibraries lists every library section the server exposes.
func (c *Client) GetLibraries(ctx context.Context) ([]Library, error) {
	req, cancel, err := c.newRequest(ctx, "/library/sections", nil)
	if err != nil {
		return nil, err
	}
	defer cancel()
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	container, err := decodeContainer(resp)
	if err != nil {
		return nil, fmt.Errorf("mediaserver: decoding library sections: %w", err)
	}

	libraries := make([]Library, 0, len(container.MediaContainer.Directory))
	for _, d := range container.MediaContainer.Directory {
		locations := make([]string, 0, len(d.Location))
		for _, l := range d.Location {
			locations = append(locations, l.Path)
		}
		libraries = append(libraries, Library{
			Key:       d.Key,
			Title:     d.Title,
			Type:      d.Type,
			Locations: locations,
		})
	}
	return libraries, nil
}

func typeCodeForKind(kind string) int {
	if kind == "episode" {
		return TypeEpisode
	}
	return TypeMovie
}

// IterItems fetches one page of items from a library section, windowed via
// the server's container-start/container-size headers. When sinceEpoch is
// set, the request asks the server to sort by updatedAt descending, and
// items whose updatedAt (or, failing that, addedAt) is older than
// sinceEpoch are dropped from the page here; items with neither timestamp
// are kept.
func (c *Client) IterItems(ctx context.Context, libraryKey string, kind string, page pagination.Params, sinceEpoch *int64) (ItemsPage, error) {
	offset, limit := page.CalculateOffsetLimit()

	query := map[string]string{
		"type":                      strconv.Itoa(typeCodeForKind(kind)),
		"X-Plex-Container-Start":    strconv.Itoa(offset),
		"X-Plex-Container-Size":     strconv.Itoa(limit),
	}
	if sinceEpoch != nil {
		query["sort"] = "updatedAt:desc"
	}

	req, cancel, err := c.newRequest(ctx, fmt.Sprintf("/library/sections/%s/all", libraryKey), query)
	if err != nil {
		return ItemsPage{}, err
	}
	defer cancel()
	resp, err := c.do(req)
	if err != nil {
		return ItemsPage{}, err
	}
	defer resp.Body.Close()

	container, err := decodeContainer(resp)
	if err != nil {
		return ItemsPage{}, fmt.Errorf("mediaserver: decoding items for library %s: %w", libraryKey, err)
	}

	items := container.MediaContainer.Metadata
	if sinceEpoch != nil {
		filtered := items[:0]
		for _, item := range items {
			ts := item.UpdatedAt
			if ts == nil {
				ts = item.AddedAt
			}
			if ts == nil || *ts >= *sinceEpoch {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return ItemsPage{
		Items: items,
		Meta:  page.BuildMeta(container.MediaContainer.TotalSize),
	}, nil
}

// GetItemDetails drills down to a single item's full metadata.
func (c *Client) GetItemDetails(ctx context.Context, ratingKey string) (ingestmap.RemoteItem, error) {
	items, err := c.fetchMetadataList(ctx, fmt.Sprintf("/library/metadata/%s", ratingKey))
	if err != nil {
		return ingestmap.RemoteItem{}, err
	}
	if len(items) == 0 {
		return ingestmap.RemoteItem{}, fmt.Errorf("mediaserver: no metadata returned for rating key %s", ratingKey)
	}
	return items[0], nil
}

// GetShowChildren lists the seasons of a show.
func (c *Client) GetShowChildren(ctx context.Context, showKey string) ([]ingestmap.RemoteItem, error) {
	return c.fetchMetadataList(ctx, fmt.Sprintf("/library/metadata/%s/children", showKey))
}

// GetSeasonChildren lists the episodes of a season.
func (c *Client) GetSeasonChildren(ctx context.Context, seasonKey string) ([]ingestmap.RemoteItem, error) {
	return c.fetchMetadataList(ctx, fmt.Sprintf("/library/metadata/%s/children", seasonKey))
}

func (c *Client) fetchMetadataList(ctx context.Context, path string) ([]ingestmap.RemoteItem, error) {
	req, cancel, err := c.newRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	defer cancel()
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	container, err := decodeContainer(resp)
	if err != nil {
		return nil, fmt.Errorf("mediaserver: decoding %s: %w", path, err)
	}
	return container.MediaContainer.Metadata, nil
}

// TestConnection pings the server's session endpoint as a connectivity check.
func (c *Client) TestConnection(ctx context.Context) bool {
	req, cancel, err := c.newRequest(ctx, "/status/sessions", nil)
	if err != nil {
		return false
	}
	defer cancel()
	resp, err := c.do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return true
}
