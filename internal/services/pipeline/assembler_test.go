package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibemix/playlist-api/internal/services/youtube"
)

func TestAssembleConflictFallsThroughToNextCandidate(t *testing.T) {
	client := &fakeVideoClient{
		insertFunc: func(playlistID, videoID string) error {
			if videoID == "primary" {
				return youtube.ErrDuplicateVideo
			}
			return nil
		},
	}
	assembler := NewAssembler(client, 0)

	items := []ResolvedItem{
		{Query: "Song A", Candidates: []string{"primary", "fallback"}},
	}

	id, inserted, err := assembler.Assemble(context.Background(), items, youtube.PlaylistMeta{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, "PLtest", id)
	assert.Equal(t, 1, inserted)
	// The fallback candidate made it in, not the conflicting one
	assert.Equal(t, []string{"fallback"}, client.inserts)
}

func TestAssembleConflictWithoutFallbackGivesUp(t *testing.T) {
	client := &fakeVideoClient{
		insertFunc: func(playlistID, videoID string) error {
			return youtube.ErrDuplicateVideo
		},
	}
	assembler := NewAssembler(client, 0)

	items := []ResolvedItem{
		{Query: "Song A", Candidates: []string{"only"}},
		{Query: "Song B", Candidates: nil},
	}

	_, inserted, err := assembler.Assemble(context.Background(), items, youtube.PlaylistMeta{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Empty(t, client.inserts)
}

func TestAssembleOtherErrorSkipsRemainingCandidates(t *testing.T) {
	attempts := 0
	client := &fakeVideoClient{
		insertFunc: func(playlistID, videoID string) error {
			if videoID == "bad-1" || videoID == "bad-2" {
				attempts++
				return errors.New("backend error")
			}
			return nil
		},
	}
	assembler := NewAssembler(client, 0)

	items := []ResolvedItem{
		// A non-conflict error must not fall through to bad-2
		{Query: "Song A", Candidates: []string{"bad-1", "bad-2"}},
		{Query: "Song B", Candidates: []string{"good"}},
	}

	_, inserted, err := assembler.Assemble(context.Background(), items, youtube.PlaylistMeta{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, []string{"good"}, client.inserts)
}

func TestAssembleCreateFailureIsFatal(t *testing.T) {
	client := &fakeVideoClient{createErr: errors.New("denied")}
	assembler := NewAssembler(client, 0)

	_, _, err := assembler.Assemble(context.Background(), []ResolvedItem{
		{Query: "Song A", Candidates: []string{"vid"}},
	}, youtube.PlaylistMeta{Title: "t"})

	require.Error(t, err)
	assert.Empty(t, client.inserts)
}

func TestAssemblePacingAppliedPerQuery(t *testing.T) {
	client := &fakeVideoClient{}
	assembler := NewAssembler(client, 20*time.Millisecond)

	items := []ResolvedItem{
		{Query: "Song A", Candidates: []string{"a"}},
		{Query: "Song B", Candidates: nil}, // skipped items are paced too
		{Query: "Song C", Candidates: []string{"c"}},
	}

	start := time.Now()
	_, inserted, err := assembler.Assemble(context.Background(), items, youtube.PlaylistMeta{Title: "t"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestAssembleZeroItemsStillSucceeds(t *testing.T) {
	client := &fakeVideoClient{}
	assembler := NewAssembler(client, 0)

	id, inserted, err := assembler.Assemble(context.Background(), nil, youtube.PlaylistMeta{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, "PLtest", id)
	assert.Zero(t, inserted)
}
