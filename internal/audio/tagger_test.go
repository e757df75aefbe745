package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/netease-rename/internal/model"
)

// fakeMP3 is an MPEG-1 Layer III frame header followed by silence.
var fakeMP3 = append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 413)...)

func writeFakeMP3(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "186016-320-4b1f.mp3")
	if err := os.WriteFile(path, fakeMP3, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testSongInfo() *model.SongInfo {
	return &model.SongInfo{
		ID:          186016,
		Title:       "Svefn-g-englar",
		Artist:      "Sigur Rós",
		Album:       "Ágætis byrjun",
		AlbumArtist: "Sigur Rós",
		TrackNum:    model.TrackNum{Track: 2, Disc: 1},
		CoverImage:  "https://p1.music.126.net/cover.jpg",
		Year:        "1999",
	}
}

func TestTagger_Write(t *testing.T) {
	path := writeFakeMP3(t)
	cover := []byte{0xFF, 0xD8, 0xFF, 0xE0, 'J', 'F', 'I', 'F'}

	if err := NewTagger().Write(path, testSongInfo(), cover); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	want := map[string]string{
		frameTitle:       "Svefn-g-englar",
		frameArtist:      "Sigur Rós",
		frameAlbum:       "Ágætis byrjun",
		frameAlbumArtist: "Sigur Rós",
		frameTrack:       "2",
		frameDisc:        "1",
		frameRecording:   "1999",
	}
	for id, text := range want {
		if got := tag.GetTextFrame(id).Text; got != text {
			t.Errorf("%s = %q, want %q", id, got, text)
		}
	}

	pics := tag.GetFrames(framePicture)
	if len(pics) != 1 {
		t.Fatalf("got %d pictures, want 1", len(pics))
	}
	pic, ok := pics[0].(id3v2.PictureFrame)
	if !ok {
		t.Fatalf("unexpected frame type %T", pics[0])
	}
	if pic.PictureType != id3v2.PTFrontCover || pic.MimeType != "image/jpeg" || !bytes.Equal(pic.Picture, cover) {
		t.Errorf("picture = %+v", pic)
	}
}

func TestTagger_WriteResetsExistingTag(t *testing.T) {
	path := writeFakeMP3(t)

	old, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	old.SetGenre("Post-rock")
	old.AddCommentFrame(id3v2.CommentFrame{Encoding: id3v2.EncodingUTF8, Language: "eng", Text: "cached"})
	if err := old.Save(); err != nil {
		t.Fatal(err)
	}
	old.Close()

	if err := NewTagger().Write(path, testSongInfo(), nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()

	if got := tag.Genre(); got != "" {
		t.Errorf("genre = %q, want cleared", got)
	}
	if n := len(tag.GetFrames(tag.CommonID("Comments"))); n != 0 {
		t.Errorf("got %d comment frames, want 0", n)
	}
	if n := len(tag.GetFrames(framePicture)); n != 0 {
		t.Errorf("got %d pictures without cover, want 0", n)
	}
	if got := tag.Title(); got != "Svefn-g-englar" {
		t.Errorf("title = %q", got)
	}

	// Audio payload must survive the rewrite.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, fakeMP3) {
		t.Error("audio frames changed")
	}
}

func TestTagger_WriteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp3")
	if err := NewTagger().Write(path, testSongInfo(), nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadTags(t *testing.T) {
	path := writeFakeMP3(t)
	if err := NewTagger().Write(path, testSongInfo(), []byte{0xFF, 0xD8, 0xFF}); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}

	if got.Title != "Svefn-g-englar" || got.Artist != "Sigur Rós" || got.Album != "Ágætis byrjun" {
		t.Errorf("summary = %+v", got)
	}
	if got.AlbumArtist != "Sigur Rós" {
		t.Errorf("AlbumArtist = %q", got.AlbumArtist)
	}
	if got.Track != 2 || got.Disc != 1 {
		t.Errorf("Track/Disc = %d/%d, want 2/1", got.Track, got.Disc)
	}
	if !got.HasCover {
		t.Error("HasCover = false, want true")
	}
}
