package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/handiism/netease-rename/internal/model"
)

// Frame ids written by Tagger. All text frames use UTF-8, which needs
// ID3v2.4.
const (
	frameTitle       = "TIT2"
	frameArtist      = "TPE1"
	frameAlbum       = "TALB"
	frameAlbumArtist = "TPE2"
	frameTrack       = "TRCK"
	frameDisc        = "TPOS"
	frameRecording   = "TDRC"
	framePicture     = "APIC"
)

// CoverDescription is the description of the embedded front cover.
const CoverDescription = "album cover"

// Tagger writes ID3 tags to MP3 files.
//
// Every write starts from an empty tag: frames already present in the
// file, including pictures, are discarded.
//
// Example:
//
//	tagger := NewTagger()
//	if err := tagger.Write(path, info, coverJPEG); err != nil {
//	    logger.Warn("tagging failed", "path", path, "err", err)
//	}
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Write replaces the tag of the MP3 at path with the fields of info.
//
// cover, when non-nil, must be JPEG data and is embedded as the front
// cover picture.
func (t *Tagger) Write(path string, info *model.SongInfo, cover []byte) error {
	// Parse: false keeps the size of the old tag so Save overwrites it,
	// but loads none of its frames.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	t.setTextFrames(tag, info)

	if cover != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: CoverDescription,
			Picture:     cover,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}

func (t *Tagger) setTextFrames(tag *id3v2.Tag, info *model.SongInfo) {
	frames := []struct {
		id   string
		text string
	}{
		{frameTitle, info.Title},
		{frameArtist, info.Artist},
		{frameAlbum, info.Album},
		{frameAlbumArtist, info.AlbumArtist},
		{frameTrack, fmt.Sprintf("%d", info.TrackNum.Track)},
		{frameDisc, fmt.Sprintf("%d", info.TrackNum.Disc)},
		{frameRecording, info.Year},
	}

	for _, f := range frames {
		tag.AddTextFrame(f.id, id3v2.EncodingUTF8, f.text)
	}
}
