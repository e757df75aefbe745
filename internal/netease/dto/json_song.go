package dto

import (
	"strings"
	"time"

	"github.com/handiism/netease-rename/internal/model"
)

// JSONSongDetail is the body of /api/v3/song/detail.
type JSONSongDetail struct {
	Code  int        `json:"code"`
	Songs []JSONSong `json:"songs"`
}

// JSONSong is one entry of JSONSongDetail.Songs.
type JSONSong struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Artists     []JSONArtist `json:"ar"`
	Album       JSONSongAlb  `json:"al"`
	No          FlexInt      `json:"no"`
	CD          FlexInt      `json:"cd"`
	PublishTime int64        `json:"publishTime"`
	DurationMS  int64        `json:"dt"`
}

// JSONArtist is an artist reference.
type JSONArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JSONSongAlb is the album reference embedded in a song.
type JSONSongAlb struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl"`
}

// CleanTitle replaces non-breaking spaces, which the API uses in some
// titles, with plain spaces.
func CleanTitle(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// FirstArtist returns the name of the first credited artist, or "".
func FirstArtist(artists []JSONArtist) string {
	if len(artists) == 0 {
		return ""
	}
	return artists[0].Name
}

// ToSongInfo maps the song to a record. The year is supplied by the
// caller because it may come from a second request.
func (js *JSONSong) ToSongInfo(id int64, year string) (*model.SongInfo, error) {
	artist := FirstArtist(js.Artists)
	return model.NewSongInfo(model.SongInfo{
		ID:          id,
		Title:       CleanTitle(js.Name),
		Artist:      artist,
		Album:       js.Album.Name,
		AlbumArtist: artist,
		TrackNum:    model.TrackNum{Track: js.No.Int(), Disc: js.CD.Int()},
		CoverImage:  js.Album.PicURL,
		Year:        year,
		Duration:    time.Duration(js.DurationMS) * time.Millisecond,
	})
}
