package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

const (
	unsplashBaseURL = "https://api.unsplash.com"
	unsplashTimeout = 10 * time.Second
)

// UnsplashClient talks to the Unsplash search API. It serves images only;
// video queries report ErrNoResults so the orchestrator falls through to
// the next provider.
type UnsplashClient struct {
	accessKey string
	baseURL   string
	client    *http.Client
	now       func() time.Time
}

// UnsplashOption applies a configuration option to the UnsplashClient.
type UnsplashOption func(*UnsplashClient)

// WithUnsplashBaseURL overrides the API endpoint.
func WithUnsplashBaseURL(u string) UnsplashOption {
	return func(c *UnsplashClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithUnsplashHTTPClient overrides the HTTP client.
func WithUnsplashHTTPClient(hc *http.Client) UnsplashOption {
	return func(c *UnsplashClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewUnsplashClient creates a client with the given API access key.
func NewUnsplashClient(accessKey string, opts ...UnsplashOption) *UnsplashClient {
	c := &UnsplashClient{
		accessKey: accessKey,
		baseURL:   unsplashBaseURL,
		client:    &http.Client{Timeout: unsplashTimeout},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Provider.
func (c *UnsplashClient) Name() string { return "unsplash" }

type unsplashSearchResponse struct {
	Results []struct {
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// SearchImages implements Provider.
func (c *UnsplashClient) SearchImages(ctx context.Context, query string, count int) ([]model.MediaAsset, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(count))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash: build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash: %w: %w", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: %w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var payload unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unsplash: decode response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("unsplash: %q: %w", query, ErrNoResults)
	}

	fetched := c.now().UTC()
	assets := make([]model.MediaAsset, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.URLs.Regular == "" {
			continue
		}
		alt := r.AltDescription
		if alt == "" {
			alt = query
		}
		assets = append(assets, model.MediaAsset{
			URL:         r.URLs.Regular,
			Kind:        model.MediaImage,
			AltText:     alt,
			Provider:    c.Name(),
			Attribution: "Photo by " + r.User.Name + " on Unsplash",
			FetchedAt:   fetched,
		})
	}
	return assets, nil
}

// SearchVideos implements Provider. Unsplash has no video catalog.
func (c *UnsplashClient) SearchVideos(_ context.Context, query string, _ int) ([]model.MediaAsset, error) {
	return nil, fmt.Errorf("unsplash: videos for %q: %w", query, ErrNoResults)
}
