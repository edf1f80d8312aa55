package youtube

// Video is one search candidate, in the platform's relevance order
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

// PlaylistMeta is the metadata for a playlist to be created
type PlaylistMeta struct {
	Title       string
	Description string
	Privacy     string // "private" or "public"
}

// Playlist is a created playlist container
type Playlist struct {
	ID string `json:"id"`
}

// Wire types for the YouTube Data API v3

type searchListResponse struct {
	Items []searchResult `json:"items"`
}

type searchResult struct {
	ID      searchResultID `json:"id"`
	Snippet snippet        `json:"snippet"`
}

type searchResultID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}

type playlistInsertRequest struct {
	Snippet playlistSnippet `json:"snippet"`
	Status  playlistStatus  `json:"status"`
}

type playlistSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type playlistStatus struct {
	PrivacyStatus string `json:"privacyStatus"`
}

type playlistInsertResponse struct {
	ID string `json:"id"`
}

type playlistItemInsertRequest struct {
	Snippet playlistItemSnippet `json:"snippet"`
}

type playlistItemSnippet struct {
	PlaylistID string     `json:"playlistId"`
	ResourceID resourceID `json:"resourceId"`
}

type resourceID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// apiError is the standard Google API error envelope
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
