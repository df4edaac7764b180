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
	pexelsBaseURL = "https://api.pexels.com"
	pexelsTimeout = 10 * time.Second

	// Hero video cut: long enough to read as ambiance, short enough to loop.
	minHeroVideoSec = 10
	maxHeroVideoSec = 30
)

// PexelsClient talks to the Pexels photo and video APIs.
type PexelsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// PexelsOption applies a configuration option to the PexelsClient.
type PexelsOption func(*PexelsClient)

// WithPexelsBaseURL overrides the API endpoint.
func WithPexelsBaseURL(u string) PexelsOption {
	return func(c *PexelsClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithPexelsHTTPClient overrides the HTTP client.
func WithPexelsHTTPClient(hc *http.Client) PexelsOption {
	return func(c *PexelsClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewPexelsClient creates a client with the given API key.
func NewPexelsClient(apiKey string, opts ...PexelsOption) *PexelsClient {
	c := &PexelsClient{
		apiKey:  apiKey,
		baseURL: pexelsBaseURL,
		client:  &http.Client{Timeout: pexelsTimeout},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Provider.
func (c *PexelsClient) Name() string { return "pexels" }

type pexelsPhotoResponse struct {
	Photos []struct {
		Alt          string `json:"alt"`
		Photographer string `json:"photographer"`
		Src          struct {
			Large2x string `json:"large2x"`
		} `json:"src"`
	} `json:"photos"`
}

type pexelsVideoResponse struct {
	Videos []struct {
		Duration int    `json:"duration"`
		Image    string `json:"image"`
		User     struct {
			Name string `json:"name"`
		} `json:"user"`
		VideoFiles []struct {
			Width   int    `json:"width"`
			Height  int    `json:"height"`
			Quality string `json:"quality"`
			Link    string `json:"link"`
		} `json:"video_files"`
	} `json:"videos"`
}

func (c *PexelsClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("pexels: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pexels: %w: %w", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pexels: %w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("pexels: decode response: %w", err)
	}
	return nil
}

// SearchImages implements Provider.
func (c *PexelsClient) SearchImages(ctx context.Context, query string, count int) ([]model.MediaAsset, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(count))
	q.Set("orientation", "landscape")

	var payload pexelsPhotoResponse
	if err := c.get(ctx, "/v1/search", q, &payload); err != nil {
		return nil, err
	}
	if len(payload.Photos) == 0 {
		return nil, fmt.Errorf("pexels: %q: %w", query, ErrNoResults)
	}

	fetched := c.now().UTC()
	assets := make([]model.MediaAsset, 0, len(payload.Photos))
	for _, p := range payload.Photos {
		if p.Src.Large2x == "" {
			continue
		}
		alt := p.Alt
		if alt == "" {
			alt = query
		}
		assets = append(assets, model.MediaAsset{
			URL:         p.Src.Large2x,
			Kind:        model.MediaImage,
			AltText:     alt,
			Provider:    c.Name(),
			Attribution: "Photo by " + p.Photographer + " on Pexels",
			FetchedAt:   fetched,
		})
	}
	return assets, nil
}

// SearchVideos implements Provider. Results are filtered to the hero video
// duration window and to landscape HD files.
func (c *PexelsClient) SearchVideos(ctx context.Context, query string, count int) ([]model.MediaAsset, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(count))
	q.Set("orientation", "landscape")

	var payload pexelsVideoResponse
	if err := c.get(ctx, "/videos/search", q, &payload); err != nil {
		return nil, err
	}

	fetched := c.now().UTC()
	assets := make([]model.MediaAsset, 0, len(payload.Videos))
	for _, v := range payload.Videos {
		if v.Duration < minHeroVideoSec || v.Duration > maxHeroVideoSec {
			continue
		}
		link := ""
		for _, f := range v.VideoFiles {
			if f.Width <= f.Height {
				continue // portrait
			}
			if f.Quality == "hd" {
				link = f.Link
				break
			}
			if link == "" {
				link = f.Link
			}
		}
		if link == "" {
			continue
		}
		assets = append(assets, model.MediaAsset{
			URL:         link,
			Kind:        model.MediaVideo,
			AltText:     query,
			Provider:    c.Name(),
			Attribution: "Video by " + v.User.Name + " on Pexels",
			PosterURL:   v.Image,
			DurationSec: v.Duration,
			FetchedAt:   fetched,
		})
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("pexels: videos for %q: %w", query, ErrNoResults)
	}
	return assets, nil
}
