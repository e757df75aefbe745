package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// ParsePlaylistFormat maps "m3u" and "pls" to a format.
func ParsePlaylistFormat(s string) (PlaylistFormat, error) {
	switch strings.ToLower(s) {
	case "", "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format %q", s)
	}
}

// Extension returns the file extension for the format, with leading dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistEntry is one renamed file.
type PlaylistEntry struct {
	Path     string
	Artist   string
	Title    string
	Duration time.Duration
}

// PlaylistCreator generates playlist files for the files a run wrote.
//
// Paths in the playlist are relative (just the filename), assuming the
// playlist file is in the same directory as the songs.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(entries)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:604,Sigur Rós - Svefn-g-englar
//	// Sigur Rós - Svefn-g-englar.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator. extended only
// affects M3U output.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Format returns the playlist format.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist returns the playlist content for entries, in order.
func (p *PlaylistCreator) CreatePlaylist(entries []PlaylistEntry) string {
	if p.format == FormatPLS {
		return p.createPLS(entries)
	}
	return p.createM3U(entries)
}

func (p *PlaylistCreator) createM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, e := range entries {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:%d,%s - %s\n", seconds(e.Duration), e.Artist, e.Title)
		}
		sb.WriteString(filepath.Base(e.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates an INI-style PLS playlist:
//
//	[playlist]
//	File1=Artist - Title.mp3
//	Title1=Artist - Title
//	Length1=180
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, e := range entries {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, filepath.Base(e.Path))
		fmt.Fprintf(&sb, "Title%d=%s - %s\n", idx, e.Artist, e.Title)
		fmt.Fprintf(&sb, "Length%d=%d\n", idx, seconds(e.Duration))
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(entries))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// seconds returns d in whole seconds, or -1 when unknown, as both
// formats expect.
func seconds(d time.Duration) int {
	if d <= 0 {
		return -1
	}
	return int(d / time.Second)
}
