package netease

import (
	"errors"
	"fmt"
)

// CodeAntiScraping is the API code returned when requests are throttled
// as suspected scraping ("cheating").
const CodeAntiScraping = -460

var (
	// ErrAntiScraping is returned when the API answers with
	// CodeAntiScraping. Further requests will fail the same way until the
	// limit expires, so callers should stop.
	ErrAntiScraping = errors.New("netease: request flagged as cheating, rate limit probably hit, try again later")

	// ErrSongNotFound is returned when a song detail response is 200 OK
	// but carries no songs.
	ErrSongNotFound = errors.New("netease: song info is empty")

	// ErrInvalidJSON is returned when a response body is not JSON.
	ErrInvalidJSON = errors.New("netease: invalid JSON response")
)

// SongError ties a resolver failure to the song id being resolved.
type SongError struct {
	SongID int64
	Err    error
}

func (e *SongError) Error() string {
	return fmt.Sprintf("song %d: %v", e.SongID, e.Err)
}

func (e *SongError) Unwrap() error {
	return e.Err
}
