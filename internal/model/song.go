package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// TrackNum is the (track, disc) position of a song within its album.
type TrackNum struct {
	Track int `json:"track" yaml:"track"`
	Disc  int `json:"disc" yaml:"disc"`
}

// String formats the pair the way it is printed in logs, e.g. "(3, 1)".
func (t TrackNum) String() string {
	return fmt.Sprintf("(%d, %d)", t.Track, t.Disc)
}

// SongInfo is the metadata record handed to the tag writer.
//
// Records are created once, by the resolver or the cached queue reader,
// and never modified afterwards.
type SongInfo struct {
	// ID is the NetEase song id.
	ID int64 `json:"id" yaml:"id" validate:"required"`

	// Title is the song title with non-breaking spaces normalized.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Artist is the first credited artist.
	Artist string `json:"artist" yaml:"artist" validate:"required"`

	// Album is the album title.
	Album string `json:"album" yaml:"album" validate:"required"`

	// AlbumArtist is written to the TPE2 frame.
	AlbumArtist string `json:"album_artist" yaml:"album_artist" validate:"required"`

	// TrackNum holds the track and disc numbers.
	TrackNum TrackNum `json:"track_num" yaml:"track_num"`

	// CoverImage is the URL of the album cover.
	CoverImage string `json:"cover_image" yaml:"cover_image" validate:"required"`

	// Year is the four digit publish year.
	Year string `json:"year" yaml:"year" validate:"required,len=4,numeric"`

	// URL is the last playback URL. Only records read from the cached
	// play queue carry it.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Duration is the song length, zero when unknown.
	Duration time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// ValidationError reports which required fields a SongInfo is missing.
type ValidationError struct {
	ID     int64
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("song %d: invalid metadata fields: %s", e.ID, strings.Join(e.Fields, ", "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func songValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// NewSongInfo validates info and returns a copy of it.
//
// Every field tagged as required must be present; otherwise a
// *ValidationError naming the offending fields is returned and no record
// is produced.
func NewSongInfo(info SongInfo) (*SongInfo, error) {
	if err := songValidator().Struct(info); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, &ValidationError{ID: info.ID, Fields: fields}
		}
		return nil, err
	}
	return &info, nil
}

// YearFromMillis converts a publish timestamp in milliseconds since the
// epoch to a year string in the local time zone.
func YearFromMillis(ms int64) string {
	return fmt.Sprintf("%04d", time.UnixMilli(ms).Year())
}
