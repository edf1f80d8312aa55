package types

import (
	"context"
	"time"

	"github.com/vibemix/playlist-api/internal/database"
	"github.com/vibemix/playlist-api/internal/services/pipeline"
)

// PipelineService is the capability handlers need from the orchestrator
type PipelineService interface {
	Ready() bool
	Generate(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Dependencies holds all the dependencies needed by handlers. Handlers
// receive this explicitly; there is no mutable package-level client state.
type Dependencies struct {
	DB       *database.DB
	Pipeline PipelineService

	// GenerateTimeout bounds one full pipeline run. Zero means the
	// handler default applies.
	GenerateTimeout time.Duration
}
