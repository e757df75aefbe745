package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/unidecode"
)

// CacheExtension is the extension of files written by the client cache.
const CacheExtension = ".mp3"

var (
	// ErrNotAudio is returned for directory entries without CacheExtension.
	ErrNotAudio = errors.New("not a cached mp3 file")

	// ErrBadCacheName is returned when a name is not
	// <song id>-<bitrate>-<random>.mp3.
	ErrBadCacheName = errors.New("file name not in format <song id>-<bit rate>-<random number>.mp3")
)

// CacheFile is a parsed client cache file name.
type CacheFile struct {
	Name    string
	SongID  int64
	Bitrate string
	Random  string
}

// ParseCacheFileName splits a cache file name into its three dash
// separated segments. Only the first one, the song id, is interpreted.
func ParseCacheFileName(name string) (CacheFile, error) {
	if !strings.HasSuffix(name, CacheExtension) {
		return CacheFile{}, ErrNotAudio
	}

	parts := strings.Split(name, "-")
	if len(parts) != 3 {
		return CacheFile{}, fmt.Errorf("%s: %w", name, ErrBadCacheName)
	}

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return CacheFile{}, fmt.Errorf("%s: %w", name, ErrBadCacheName)
	}

	return CacheFile{
		Name:    name,
		SongID:  id,
		Bitrate: parts[1],
		Random:  strings.TrimSuffix(parts[2], CacheExtension),
	}, nil
}

// NameOption tweaks TargetFileName.
type NameOption func(*nameOptions)

type nameOptions struct {
	ascii bool
}

// WithASCII transliterates artist and title to ASCII before sanitizing.
func WithASCII(enabled bool) NameOption {
	return func(o *nameOptions) {
		o.ascii = enabled
	}
}

var nameReplacer = strings.NewReplacer("/", " ", ":", " ", "?", " ")

// SanitizeNamePart replaces / : ? with spaces and trims surrounding
// whitespace. Every other character, dashes included, is kept.
func SanitizeNamePart(s string) string {
	return strings.TrimSpace(nameReplacer.Replace(s))
}

// TargetFileName returns dir/"<artist> - <title>.<format>".
func TargetFileName(dir, title, artist, format string, opts ...NameOption) string {
	var o nameOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Transliteration maps full-width ／ ： ？ to their ASCII forms, so
	// it has to happen before sanitizing.
	if o.ascii {
		artist = unidecode.Unidecode(artist)
		title = unidecode.Unidecode(title)
	}
	a := SanitizeNamePart(artist)
	t := SanitizeNamePart(title)

	return filepath.Join(dir, fmt.Sprintf("%s - %s", a, t)) + "." + format
}
