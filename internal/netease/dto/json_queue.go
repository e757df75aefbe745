package dto

import (
	"github.com/handiism/netease-rename/internal/model"
)

// JSONQueueItem is one entry of the desktop client's cached play queue.
type JSONQueueItem struct {
	Track        JSONQueueTrack    `json:"track"`
	LastPlayInfo *JSONLastPlayInfo `json:"lastPlayInfo"`
}

// JSONQueueTrack uses the older web API field names (artists, album,
// position) rather than the v3 ones (ar, al, no).
type JSONQueueTrack struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Artists  []JSONArtist   `json:"artists"`
	Album    JSONQueueAlbum `json:"album"`
	Position FlexInt        `json:"position"`
	CD       FlexInt        `json:"cd"`
}

// JSONQueueAlbum is the album reference of a queued track.
type JSONQueueAlbum struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	PicURL string `json:"picUrl"`
}

// JSONLastPlayInfo carries the last playback URL, when present.
type JSONLastPlayInfo struct {
	RetJSON *struct {
		URL string `json:"url"`
	} `json:"retJson"`
}

// PlayURL returns the last playback URL or "".
func (q *JSONQueueItem) PlayURL() string {
	if q.LastPlayInfo == nil || q.LastPlayInfo.RetJSON == nil {
		return ""
	}
	return q.LastPlayInfo.RetJSON.URL
}

// ToSongInfo maps the queue entry to a record. Album artist and year
// always come from the album lookup, unlike the song detail mapping
// which reuses the track artist.
func (q *JSONQueueItem) ToSongInfo(album *JSONAlbum) (*model.SongInfo, error) {
	return model.NewSongInfo(model.SongInfo{
		ID:          q.Track.ID,
		Title:       CleanTitle(q.Track.Name),
		Artist:      FirstArtist(q.Track.Artists),
		Album:       q.Track.Album.Name,
		AlbumArtist: album.Artist.Name,
		TrackNum:    model.TrackNum{Track: q.Track.Position.Int(), Disc: q.Track.CD.Int()},
		CoverImage:  q.Track.Album.PicURL,
		Year:        model.YearFromMillis(album.PublishTime),
		URL:         q.PlayURL(),
	})
}
