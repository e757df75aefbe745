// Package audio provides audio file manipulation services: ID3 tag
// writing and reading, and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to replace the tag of a cached MP3:
//
//	err := audio.NewTagger().Write(path, info, coverJPEG)
//
// The tagger writes:
//   - Title, Artist, Album, Album Artist
//   - Track Number and Disc Number
//   - Recording date (year)
//   - Front cover picture (JPEG)
//
// ReadTags reads a tag back, which is handy for logging what was written.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.CreatePlaylist(entries)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
