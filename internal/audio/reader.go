package audio

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// TagSummary is what a tag read back from disk contains.
type TagSummary struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Track       int
	Disc        int
	Year        int
	HasCover    bool
}

// ReadTags reads the tag of the audio file at path.
func ReadTags(path string) (*TagSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	track, _ := m.Track()
	disc, _ := m.Disc()

	return &TagSummary{
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		AlbumArtist: m.AlbumArtist(),
		Track:       track,
		Disc:        disc,
		Year:        m.Year(),
		HasCover:    m.Picture() != nil,
	}, nil
}
