package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Config holds configuration for the YouTube Data API client
type Config struct {
	// HTTPClient must already carry OAuth credentials (see LoadAuthorizedClient).
	// Falls back to http.DefaultClient, which only works against test servers.
	HTTPClient *http.Client

	// Rate limiting
	RequestsPerMinute int // Default: 60
	BurstSize         int // Default: 5

	// HTTP configuration
	Timeout time.Duration // Default: 30s

	// Base URL (for testing)
	BaseURL string // Default: https://www.googleapis.com/youtube/v3
}

// Client handles communication with the YouTube Data API v3
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
}

// NewClient creates a new YouTube API client
func NewClient(cfg Config) *Client {
	// Apply defaults
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = 5
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = cfg.Timeout
	}

	limiter := rate.NewLimiter(
		rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
		cfg.BurstSize,
	)

	return &Client{
		httpClient:  httpClient,
		rateLimiter: limiter,
		baseURL:     cfg.BaseURL,
	}
}

// SearchVideos searches for videos matching the query and returns up to
// maxResults candidates in the platform's relevance order. No re-ranking.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 1
	}
	if maxResults > 50 {
		maxResults = 50 // API max
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	var result searchListResponse
	if err := c.doRequest(ctx, http.MethodGet, searchURL, nil, &result); err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	videos := make([]Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}

	return videos, nil
}

// CreatePlaylist creates a new playlist owned by the authenticated account
func (c *Client) CreatePlaylist(ctx context.Context, meta PlaylistMeta) (*Playlist, error) {
	if meta.Privacy == "" {
		meta.Privacy = "private"
	}

	body := playlistInsertRequest{
		Snippet: playlistSnippet{
			Title:       meta.Title,
			Description: meta.Description,
		},
		Status: playlistStatus{
			PrivacyStatus: meta.Privacy,
		},
	}

	insertURL := fmt.Sprintf("%s/playlists?part=%s", c.baseURL, url.QueryEscape("snippet,status"))

	var result playlistInsertResponse
	if err := c.doRequest(ctx, http.MethodPost, insertURL, body, &result); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	if result.ID == "" {
		return nil, ErrInvalidResponse
	}

	return &Playlist{ID: result.ID}, nil
}

// InsertPlaylistItem appends a video to the end of a playlist. Returns
// ErrDuplicateVideo when the platform reports the video is already a member.
func (c *Client) InsertPlaylistItem(ctx context.Context, playlistID, videoID string) error {
	body := playlistItemInsertRequest{
		Snippet: playlistItemSnippet{
			PlaylistID: playlistID,
			ResourceID: resourceID{
				Kind:    "youtube#video",
				VideoID: videoID,
			},
		},
	}

	insertURL := fmt.Sprintf("%s/playlistItems?part=snippet", c.baseURL)

	if err := c.doRequest(ctx, http.MethodPost, insertURL, body, nil); err != nil {
		return fmt.Errorf("insert playlist item: %w", err)
	}

	return nil
}

// doRequest performs a single HTTP request against the API
func (c *Client) doRequest(ctx context.Context, method, fullURL string, body, result interface{}) error {
	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// decodeError maps a non-2xx response to a sentinel or descriptive error
func (c *Client) decodeError(resp *http.Response) error {
	var envelope apiError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		for _, e := range envelope.Error.Errors {
			// Both reasons appear in the wild for playlist item conflicts
			if e.Reason == "videoAlreadyInPlaylist" || e.Reason == "duplicate" {
				return ErrDuplicateVideo
			}
			if e.Reason == "quotaExceeded" || e.Reason == "rateLimitExceeded" {
				return ErrRateLimited
			}
		}
		if envelope.Error.Message != "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, envelope.Error.Message)
		}
	}

	if resp.StatusCode == http.StatusConflict {
		return ErrDuplicateVideo
	}

	return fmt.Errorf("API returned status %d", resp.StatusCode)
}
