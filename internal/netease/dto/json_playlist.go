package dto

// JSONPlaylistDetail is the body of /api/v6/playlist/detail.
type JSONPlaylistDetail struct {
	Code     int          `json:"code"`
	Playlist JSONPlaylist `json:"playlist"`
}

// JSONPlaylist holds the playlist's track id list. The full track
// objects are truncated by the API for long playlists; trackIds is not.
type JSONPlaylist struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	TrackIDs []JSONTrackID `json:"trackIds"`
}

// JSONTrackID is one entry of JSONPlaylist.TrackIDs.
type JSONTrackID struct {
	ID int64 `json:"id"`
}

// SongIDs returns the ids of TrackIDs in order.
func (jp *JSONPlaylist) SongIDs() []int64 {
	ids := make([]int64, 0, len(jp.TrackIDs))
	for _, t := range jp.TrackIDs {
		ids = append(ids, t.ID)
	}
	return ids
}
