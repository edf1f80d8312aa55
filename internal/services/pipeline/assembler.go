package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vibemix/playlist-api/internal/services/youtube"
)

// Assembler creates the playlist container and appends resolved videos to
// it in input order. Individual insert failures are absorbed; only the
// create call is fatal.
type Assembler struct {
	client      VideoClient
	insertDelay time.Duration
}

// NewAssembler creates an assembler. insertDelay is applied once per query
// after its insertion attempts, to stay under the platform's quota; pass 0
// to disable pacing (tests).
func NewAssembler(client VideoClient, insertDelay time.Duration) *Assembler {
	return &Assembler{
		client:      client,
		insertDelay: insertDelay,
	}
}

// Assemble creates the playlist and inserts each item's candidates
// sequentially. Returns the playlist id and how many items were inserted.
// A zero-insert run still returns success; empty-playlist policy is
// enforced by the orchestrator before this is called.
func (a *Assembler) Assemble(ctx context.Context, items []ResolvedItem, meta youtube.PlaylistMeta) (string, int, error) {
	playlist, err := a.client.CreatePlaylist(ctx, meta)
	if err != nil {
		return "", 0, fmt.Errorf("creating playlist: %w", err)
	}

	inserted := 0
	for _, item := range items {
		if a.insertItem(ctx, playlist.ID, item) {
			inserted++
		}
		// Unconditional pacing, once per query, success or not
		a.pace(ctx)
	}

	return playlist.ID, inserted, nil
}

// insertItem tries the item's candidates in order. A conflict falls through
// to the next candidate; any other error gives up on this item entirely.
func (a *Assembler) insertItem(ctx context.Context, playlistID string, item ResolvedItem) bool {
	if len(item.Candidates) == 0 {
		log.Printf("[DEBUG] No candidate for %q, skipping", item.Query)
		return false
	}

	for _, videoID := range item.Candidates {
		err := a.client.InsertPlaylistItem(ctx, playlistID, videoID)
		if err == nil {
			return true
		}

		if errors.Is(err, youtube.ErrDuplicateVideo) {
			log.Printf("[WARN] Video %s already in playlist for %q, trying next candidate", videoID, item.Query)
			continue
		}

		log.Printf("[ERROR] Failed to insert video %s for %q: %v", videoID, item.Query, err)
		return false
	}

	return false
}

// pace applies the fixed per-query delay. It returns early on context
// cancellation so a dying request does not hold the worker in sleeps;
// the remaining API calls will fail fast and be absorbed per query.
func (a *Assembler) pace(ctx context.Context) {
	if a.insertDelay <= 0 {
		return
	}

	select {
	case <-time.After(a.insertDelay):
	case <-ctx.Done():
	}
}
