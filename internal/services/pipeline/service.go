package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vibemix/playlist-api/internal/services/normalizer"
	"github.com/vibemix/playlist-api/internal/services/youtube"
	apperrors "github.com/vibemix/playlist-api/pkg/errors"
)

// playlistURLFormat is the canonical public URL for a created playlist
const playlistURLFormat = "https://www.youtube.com/playlist?list=%s"

// Config holds pipeline tuning knobs
type Config struct {
	// MaxCandidates per search; the extra candidates only serve
	// insert-conflict fallback. Default: 2
	MaxCandidates int

	// InsertDelay is the unconditional per-query pacing delay during
	// assembly. Default: 800ms. Set 0 in tests.
	InsertDelay time.Duration
}

// Service orchestrates one request through
// normalize -> resolve -> assemble. All external calls within a request are
// sequential; item order in the playlist mirrors input order, and the
// pacing delay is the quota throttle. Concurrent requests each get their
// own run; the only shared state is the read-only authenticated client.
type Service struct {
	client    VideoClient
	expander  Expander
	resolver  *Resolver
	assembler *Assembler
}

// NewService creates the orchestrator. A nil client means the YouTube side
// is not ready and every request fails with SERVICE_DOWN. A nil expander
// disables vibe mode only.
func NewService(client VideoClient, expander Expander, cfg Config) *Service {
	s := &Service{
		client:   client,
		expander: expander,
	}
	if client != nil {
		s.resolver = NewResolver(client, cfg.MaxCandidates)
		s.assembler = NewAssembler(client, cfg.InsertDelay)
	}
	return s
}

// Ready reports whether the authenticated video client is wired
func (s *Service) Ready() bool {
	return s.client != nil
}

// Generate runs the full pipeline for one request. Per-query failures are
// absorbed (best effort: populate as much of the playlist as possible);
// stage-level failures (validation, text generation, zero matches, playlist
// creation) abort the request with a structured error.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if !s.Ready() {
		return nil, apperrors.ClientNotReadyError("youtube")
	}

	queries, warnings, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	items, resolved := s.resolveAll(ctx, queries)

	// Never create an empty playlist: bail before the create call when
	// nothing resolved at all
	if resolved == 0 {
		return nil, apperrors.NoMatchesError(len(queries))
	}

	meta := youtube.PlaylistMeta{
		Title:       req.Title,
		Description: "Generated by VibeMix",
		Privacy:     "private",
	}
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("VibeMix %s", time.Now().Format("2006-01-02"))
	}

	playlistID, inserted, err := s.assembler.Assemble(ctx, items, meta)
	if err != nil {
		return nil, apperrors.ExternalServiceError("youtube", err)
	}

	return &Result{
		PlaylistID:  playlistID,
		PlaylistURL: fmt.Sprintf(playlistURLFormat, playlistID),
		Queries:     len(queries),
		Resolved:    resolved,
		Inserted:    inserted,
		Warnings:    warnings,
	}, nil
}

// validate checks the request invariants before any external call
func validate(req Request) error {
	if req.Mode == "" {
		return apperrors.MissingFieldError("mode")
	}
	if req.Content == "" {
		return apperrors.MissingFieldError("content")
	}
	if req.Mode != ModeManual && req.Mode != ModeVibe {
		return apperrors.ValidationError("mode", fmt.Sprintf("must be %q or %q", ModeManual, ModeVibe))
	}
	return nil
}

// normalize produces the ordered query list for the request's mode. Vibe
// mode expands first and then requires the "Title – Artist" shape; manual
// mode takes the content as-is.
func (s *Service) normalize(ctx context.Context, req Request) ([]string, []normalizer.Warning, error) {
	if req.Mode == ModeVibe {
		if s.expander == nil {
			return nil, nil, apperrors.ClientNotReadyError("text generation")
		}

		raw, err := s.expander.Expand(ctx, req.Content)
		if err != nil {
			return nil, nil, apperrors.ExternalServiceError("text generation", err)
		}

		queries, warnings := normalizer.Normalize(raw, normalizer.Options{
			RequireSeparator:   true,
			RecoverInlineLists: true,
		})
		return queries, warnings, nil
	}

	queries, warnings := normalizer.Normalize(req.Content, normalizer.Options{})
	return queries, warnings, nil
}

// resolveAll runs the resolver for every query sequentially, absorbing
// per-query search failures, and reports how many queries found at least
// one candidate
func (s *Service) resolveAll(ctx context.Context, queries []string) ([]ResolvedItem, int) {
	items := make([]ResolvedItem, 0, len(queries))
	resolved := 0

	for _, query := range queries {
		candidates, err := s.resolver.Resolve(ctx, query)
		if err != nil {
			log.Printf("[ERROR] Search failed for %q: %v", query, err)
			candidates = nil
		}
		if len(candidates) > 0 {
			resolved++
		}
		items = append(items, ResolvedItem{Query: query, Candidates: candidates})
	}

	return items, resolved
}
