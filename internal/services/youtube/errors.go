package youtube

import "errors"

var (
	// ErrRateLimited indicates the API rate limit or quota was exceeded
	ErrRateLimited = errors.New("youtube api rate limit exceeded")

	// ErrDuplicateVideo indicates the video is already in the target playlist
	ErrDuplicateVideo = errors.New("video already in playlist")

	// ErrInvalidResponse indicates the API returned an unparsable response
	ErrInvalidResponse = errors.New("invalid response from youtube api")
)
