package pipeline

import (
	"context"

	"github.com/vibemix/playlist-api/internal/services/youtube"
)

// VideoClient is the authenticated video-platform capability the pipeline
// consumes. Credentials are established before the pipeline runs; the
// pipeline never refreshes or mutates them.
type VideoClient interface {
	SearchVideos(ctx context.Context, query string, maxResults int) ([]youtube.Video, error)
	CreatePlaylist(ctx context.Context, meta youtube.PlaylistMeta) (*youtube.Playlist, error)
	InsertPlaylistItem(ctx context.Context, playlistID, videoID string) error
}

// Expander turns a vibe description into raw candidate-song text
type Expander interface {
	Expand(ctx context.Context, vibe string) (string, error)
}
