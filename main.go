package main

import "github.com/vibemix/playlist-api/cmd"

// @title           VibeMix Playlist API
// @version         1.0.0
// @description     Turns song lists and vibe descriptions into YouTube playlists
// @contact.name    API Support
// @contact.url     https://github.com/vibemix/playlist-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:10000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
