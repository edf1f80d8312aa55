package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vibemix/playlist-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vibemix",
	Short: "VibeMix Playlist API server",
	Long: `VibeMix Playlist API - turns song lists and vibe descriptions into YouTube playlists

Paste a numbered song list, or describe a mood and let the text generator
propose the tracklist. Each line is resolved to a video and inserted into a
new private playlist in the order you gave it.

Features:
  • Manual mode: one song per line, "Title – Artist"
  • Vibe mode: mood description expanded into ten songs
  • Order-preserving playlist assembly with duplicate fallback
  • OAuth token storage with file-based fallback`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never touch config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
