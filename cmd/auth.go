package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vibemix/playlist-api/internal/database"
	"github.com/vibemix/playlist-api/internal/models"
	"github.com/vibemix/playlist-api/internal/services/tokens"
	"github.com/vibemix/playlist-api/internal/services/youtube"
	"github.com/vibemix/playlist-api/pkg/config"
	"golang.org/x/oauth2"
)

var authTokenFile string

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize the YouTube account",
	Long: `Run the interactive OAuth flow for the YouTube account that will own
the generated playlists.

Open the printed URL in a browser, approve access, and paste the
authorization code back here. The token is stored in the database token
store and optionally written to a file for deployments that mount
token.json as a secret.

Example:
  vibemix auth
  vibemix auth --token-file /etc/secrets/token.json`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().StringVar(&authTokenFile, "token-file", "", "also write the token to this file")
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	oauthCfg, err := youtube.LoadOAuthConfig(cfg.YouTube.CredentialsPath)
	if err != nil {
		return err
	}

	// State is echoed back by the provider; with a console flow we only
	// use it to make the URL single-use
	state := uuid.NewString()
	authURL := oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println("Open the following URL in your browser and approve access:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Paste the authorization code here: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("reading authorization code: %w", err)
	}

	token, err := oauthCfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
		if err != nil {
			log.Printf("[WARN] Token store unavailable: %v", err)
		} else {
			defer db.Close()
			if err := db.AutoMigrate(&models.AuthToken{}); err != nil {
				return fmt.Errorf("failed to migrate token store: %w", err)
			}
			if err := tokens.NewRepository(db.DB).Save(cmd.Context(), tokens.ProviderYouTube, token); err != nil {
				return fmt.Errorf("storing token: %w", err)
			}
			fmt.Println("Token stored in database")
		}
	}

	if authTokenFile != "" {
		data, err := json.MarshalIndent(token, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding token: %w", err)
		}
		if err := os.WriteFile(authTokenFile, data, 0o600); err != nil {
			return fmt.Errorf("writing token file: %w", err)
		}
		fmt.Printf("Token written to %s\n", authTokenFile)
	}

	fmt.Println("Authorization complete")
	return nil
}
