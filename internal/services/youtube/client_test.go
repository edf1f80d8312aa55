package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient builds a client against a test server with rate limiting
// effectively disabled
func testClient(serverURL string) *Client {
	return NewClient(Config{
		BaseURL:           serverURL,
		RequestsPerMinute: 6000,
		BurstSize:         100,
		Timeout:           5 * time.Second,
	})
}

func TestSearchVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "2", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test song", r.URL.Query().Get("q"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":      map[string]string{"kind": "youtube#video", "videoId": "abc123"},
					"snippet": map[string]string{"title": "Test Song", "channelTitle": "Test Channel"},
				},
				{
					"id":      map[string]string{"kind": "youtube#video", "videoId": "def456"},
					"snippet": map[string]string{"title": "Test Song Cover", "channelTitle": "Other Channel"},
				},
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	videos, err := client.SearchVideos(context.Background(), "test song", 2)

	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "abc123", videos[0].ID)
	assert.Equal(t, "Test Song", videos[0].Title)
	assert.Equal(t, "def456", videos[1].ID)
}

func TestSearchVideosEmptyQuery(t *testing.T) {
	client := testClient("http://unused")
	_, err := client.SearchVideos(context.Background(), "", 1)
	assert.Error(t, err)
}

func TestSearchVideosSkipsResultsWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": map[string]string{"kind": "youtube#channel"}},
				{"id": map[string]string{"kind": "youtube#video", "videoId": "real1"}},
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	videos, err := client.SearchVideos(context.Background(), "anything", 2)

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "real1", videos[0].ID)
}

func TestCreatePlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlists", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "snippet,status", r.URL.Query().Get("part"))

		var body playlistInsertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Road Trip", body.Snippet.Title)
		assert.Equal(t, "private", body.Status.PrivacyStatus)

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "PL12345"})
	}))
	defer server.Close()

	client := testClient(server.URL)
	playlist, err := client.CreatePlaylist(context.Background(), PlaylistMeta{Title: "Road Trip"})

	require.NoError(t, err)
	assert.Equal(t, "PL12345", playlist.ID)
}

func TestCreatePlaylistServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    403,
				"message": "The request is missing a valid API key.",
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.CreatePlaylist(context.Background(), PlaylistMeta{Title: "Nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestInsertPlaylistItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlistItems", r.URL.Path)

		var body playlistItemInsertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PL12345", body.Snippet.PlaylistID)
		assert.Equal(t, "youtube#video", body.Snippet.ResourceID.Kind)
		assert.Equal(t, "abc123", body.Snippet.ResourceID.VideoID)

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "item1"})
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.InsertPlaylistItem(context.Background(), "PL12345", "abc123")

	assert.NoError(t, err)
}

func TestInsertPlaylistItemConflict(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   interface{}
	}{
		{
			name:   "videoAlreadyInPlaylist reason",
			status: http.StatusConflict,
			body: map[string]interface{}{
				"error": map[string]interface{}{
					"code":   409,
					"errors": []map[string]string{{"reason": "videoAlreadyInPlaylist"}},
				},
			},
		},
		{
			name:   "duplicate reason",
			status: http.StatusConflict,
			body: map[string]interface{}{
				"error": map[string]interface{}{
					"code":   409,
					"errors": []map[string]string{{"reason": "duplicate"}},
				},
			},
		},
		{
			name:   "bare 409",
			status: http.StatusConflict,
			body:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := testClient(server.URL)
			err := client.InsertPlaylistItem(context.Background(), "PL12345", "abc123")

			assert.ErrorIs(t, err, ErrDuplicateVideo)
		})
	}
}

func TestRateLimitedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.SearchVideos(context.Background(), "anything", 1)

	assert.ErrorIs(t, err, ErrRateLimited)
}
