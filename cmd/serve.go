package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vibemix/playlist-api/api"
	"github.com/vibemix/playlist-api/api/types"
	"github.com/vibemix/playlist-api/internal/database"
	"github.com/vibemix/playlist-api/internal/models"
	"github.com/vibemix/playlist-api/internal/services/pipeline"
	"github.com/vibemix/playlist-api/internal/services/tokens"
	"github.com/vibemix/playlist-api/internal/services/vibe"
	"github.com/vibemix/playlist-api/internal/services/youtube"
	"github.com/vibemix/playlist-api/pkg/config"
	"golang.org/x/oauth2"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the VibeMix Playlist API server with the configured settings.

The server accepts playlist generation requests and resolves them against
the authenticated YouTube account. Run 'vibemix auth' first to store an
OAuth token; without one the server starts but reports 503 on /generate.

Example:
  vibemix serve
  vibemix serve --port 9090
  vibemix serve --host 0.0.0.0 --port 10000`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Token store is optional: without it tokens come from the token file
	var db *database.DB
	if cfg.Database.Path != "" {
		db, err = database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
		if err != nil {
			log.Printf("[WARN] Token store unavailable, falling back to token file: %v", err)
			db = nil
		} else if err := db.AutoMigrate(&models.AuthToken{}); err != nil {
			return fmt.Errorf("failed to migrate token store: %w", err)
		}
	}

	deps := buildDependencies(cmd.Context(), cfg, db)

	fmt.Printf("Starting VibeMix Playlist API server on %s:%d\n", serverHost, serverPort)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	if db != nil {
		server.SetDatabase(db)
	}
	server.SetDependencies(deps)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Closing token store: %v", err)
		}
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies assembles the handler dependencies. A missing OAuth
// token or credentials file is not fatal: the server still serves /health
// and reports 503 on /generate until 'vibemix auth' has been run.
func buildDependencies(ctx context.Context, cfg *config.Config, db *database.DB) *types.Dependencies {
	var videoClient pipeline.VideoClient

	if client, err := buildVideoClient(ctx, cfg, db); err != nil {
		log.Printf("[WARN] Video client not available: %v", err)
	} else {
		videoClient = client
	}

	var expander pipeline.Expander
	if cfg.OpenAI.APIKey != "" {
		generator := vibe.NewOpenAIGenerator(vibe.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		})
		expander = vibe.NewExpander(generator, cfg.OpenAI.Temperature)
	} else {
		log.Printf("[WARN] No OpenAI API key configured, vibe mode disabled")
	}

	service := pipeline.NewService(videoClient, expander, pipeline.Config{
		MaxCandidates: cfg.Pipeline.MaxCandidates,
		InsertDelay:   cfg.Pipeline.InsertDelay,
	})

	return &types.Dependencies{
		DB:              db,
		Pipeline:        service,
		GenerateTimeout: cfg.Pipeline.RequestTimeout,
	}
}

// buildVideoClient loads OAuth credentials and a stored token, preferring
// the database token store over the mounted token file
func buildVideoClient(ctx context.Context, cfg *config.Config, db *database.DB) (*youtube.Client, error) {
	oauthCfg, err := youtube.LoadOAuthConfig(cfg.YouTube.CredentialsPath)
	if err != nil {
		return nil, err
	}

	var token *oauth2.Token
	if db != nil {
		token, err = tokens.NewRepository(db.DB).Get(ctx, tokens.ProviderYouTube)
		if err != nil && !errors.Is(err, tokens.ErrNotFound) {
			log.Printf("[WARN] Reading stored token: %v", err)
		}
	}
	if token == nil {
		token, err = youtube.LoadTokenFile(cfg.YouTube.TokenPath)
		if err != nil {
			return nil, fmt.Errorf("no usable token (run 'vibemix auth'): %w", err)
		}
	}

	httpClient := youtube.NewAuthorizedClient(ctx, oauthCfg, token)

	return youtube.NewClient(youtube.Config{
		HTTPClient:        httpClient,
		BaseURL:           cfg.YouTube.BaseURL,
		Timeout:           cfg.YouTube.Timeout,
		RequestsPerMinute: cfg.YouTube.RequestsPerMinute,
		BurstSize:         cfg.YouTube.BurstSize,
	}), nil
}
