package rename

import (
	"context"
	"fmt"

	"github.com/handiism/netease-rename/internal/audio"
	ioutils "github.com/handiism/netease-rename/internal/io"
	"github.com/handiism/netease-rename/internal/model"
)

// Apply tags the file at sourcePath with info, then copies or moves it
// to "<dist>/<artist> - <title>.mp3" and returns that path.
//
// The destination directory is created when missing (one level only).
// The tag is written to the source file before it is copied, so with
// KeepSource the cache file ends up re-tagged as well. A failed cover
// download leaves the text frames written without a picture; a failed
// tag write is logged. Neither stops the copy or move.
func (m *Manager) Apply(ctx context.Context, info *model.SongInfo, sourcePath string) (string, error) {
	if err := ioutils.EnsureDir(m.settings.DistPath); err != nil {
		return "", fmt.Errorf("create destination directory: %w", err)
	}

	if err := m.tag(ctx, info, sourcePath); err != nil {
		m.logger.Warn("tagging failed, renaming anyway", "song_id", info.ID, "file", sourcePath, "err", err)
	}

	dest := model.TargetFileName(m.settings.DistPath, info.Title, info.Artist, SongFormat,
		model.WithASCII(m.settings.Asciify))

	if m.settings.KeepSource {
		if err := ioutils.CopyFile(ctx, sourcePath, dest); err != nil {
			return "", fmt.Errorf("copy %s: %w", sourcePath, err)
		}
	} else {
		if err := ioutils.MoveFile(ctx, sourcePath, dest); err != nil {
			return "", fmt.Errorf("move %s: %w", sourcePath, err)
		}
	}

	m.logger.Info("renamed", "song_id", info.ID, "dest", dest)
	return dest, nil
}

func (m *Manager) tag(ctx context.Context, info *model.SongInfo, path string) error {
	m.logger.Info("tagging",
		"song_id", info.ID,
		"title", info.Title,
		"artist", info.Artist,
		"album", info.Album,
		"album_artist", info.AlbumArtist,
		"track_num", info.TrackNum.String(),
		"year", info.Year,
	)

	var cover []byte
	if m.settings.SaveCover {
		var err error
		cover, err = m.downloadCover(ctx, info)
		if err != nil {
			m.logger.Warn("cover unavailable, tagging without it", "song_id", info.ID, "url", info.CoverImage, "err", err)
			cover = nil
		}
	}

	if err := m.tagger.Write(path, info, cover); err != nil {
		return err
	}

	if summary, err := audio.ReadTags(path); err == nil {
		m.logger.Debug("tag written",
			"song_id", info.ID,
			"title", summary.Title,
			"artist", summary.Artist,
			"track", summary.Track,
			"disc", summary.Disc,
			"cover", summary.HasCover,
		)
	}
	return nil
}

func (m *Manager) downloadCover(ctx context.Context, info *model.SongInfo) ([]byte, error) {
	data, err := m.httpClient.DownloadBytes(ctx, info.CoverImage)
	if err != nil {
		return nil, err
	}
	return m.imageService.Normalize(ctx, data, m.settings.Cover.MaxSize)
}
