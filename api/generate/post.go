package generate

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vibemix/playlist-api/api/types"
	"github.com/vibemix/playlist-api/internal/services/pipeline"
	apperrors "github.com/vibemix/playlist-api/pkg/errors"
)

// defaultTimeout bounds a full pipeline run: N sequential searches plus
// N paced inserts add up, so this is generous compared to normal handlers
const defaultTimeout = 5 * time.Minute

// Post handles playlist generation requests
// @Summary      Generate a playlist
// @Description  Resolves each song line (typed directly, or expanded from a vibe description) to a video and assembles a new private playlist in input order
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateRequest true "Generation parameters"
// @Success      200 {object} types.GenerateResponse "Playlist created, possibly partially populated"
// @Failure      400 {object} types.ErrorResponse "Missing mode or content"
// @Failure      500 {object} types.ErrorResponse "No videos found, or playlist creation failed"
// @Failure      503 {object} types.ErrorResponse "Authenticated video client not ready"
// @Router       /api/v1/generate [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse request body
		var req types.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Missing mode or content",
				Details: err.Error(),
			})
			return
		}

		// Surface readiness before starting any work
		if deps.Pipeline == nil || !deps.Pipeline.Ready() {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Video platform client is not ready",
				Error:   string(apperrors.ErrCodeServiceDown),
			})
			return
		}

		timeout := deps.GenerateTimeout
		if timeout == 0 {
			timeout = defaultTimeout
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		result, err := deps.Pipeline.Generate(ctx, pipeline.Request{
			Mode:    req.Mode,
			Content: req.Content,
			Title:   req.Title,
		})
		if err != nil {
			log.Printf("[ERROR] Playlist generation failed (mode=%s): %v", req.Mode, err)

			message := "Failed to generate playlist"
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				message = appErr.Message
			}

			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Status:  types.StatusError,
				Message: message,
				Error:   string(apperrors.GetCode(err)),
			})
			return
		}

		c.JSON(http.StatusOK, types.GenerateResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Playlist created",
			},
			PlaylistURL: result.PlaylistURL,
			PlaylistID:  result.PlaylistID,
			Queries:     result.Queries,
			Resolved:    result.Resolved,
			Inserted:    result.Inserted,
			Warnings:    result.Warnings,
		})
	}
}
