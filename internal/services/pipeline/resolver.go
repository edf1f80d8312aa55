package pipeline

import (
	"context"
	"fmt"
)

// Resolver maps one query to a small set of video candidates via search.
// No caching: every call is an independent search.
type Resolver struct {
	client        VideoClient
	maxCandidates int
}

// NewResolver creates a resolver requesting up to maxCandidates results
// per query (the second candidate only exists for insert-conflict fallback)
func NewResolver(client VideoClient, maxCandidates int) *Resolver {
	if maxCandidates <= 0 {
		maxCandidates = 2
	}
	return &Resolver{
		client:        client,
		maxCandidates: maxCandidates,
	}
}

// Resolve returns candidate video ids for the query in the platform's
// relevance order. A query with no acceptable match returns an empty slice
// and no error; transport/API failures return an error for the caller to
// absorb at per-query granularity.
func (r *Resolver) Resolve(ctx context.Context, query string) ([]string, error) {
	videos, err := r.client.SearchVideos(ctx, query, r.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", query, err)
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}

	return ids, nil
}
