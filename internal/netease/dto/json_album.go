package dto

// JSONAlbumDetail is the body of /api/album/<id>.
type JSONAlbumDetail struct {
	Code  int       `json:"code"`
	Album JSONAlbum `json:"album"`
}

// JSONAlbum holds the album fields the tool reads.
type JSONAlbum struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	PublishTime int64          `json:"publishTime"`
	Artist      JSONArtist     `json:"artist"`
	PicURL      string         `json:"picUrl"`
	Songs       []JSONAlbumRef `json:"songs"`
}

// JSONAlbumRef is a song listed in an album.
type JSONAlbumRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SongIDs returns the ids of Songs in order.
func (ja *JSONAlbum) SongIDs() []int64 {
	ids := make([]int64, 0, len(ja.Songs))
	for _, s := range ja.Songs {
		ids = append(ids, s.ID)
	}
	return ids
}
