package rename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"

	"github.com/handiism/netease-rename/internal/audio"
	"github.com/handiism/netease-rename/internal/config"
	"github.com/handiism/netease-rename/internal/http"
	ioutils "github.com/handiism/netease-rename/internal/io"
	"github.com/handiism/netease-rename/internal/model"
	"github.com/handiism/netease-rename/internal/netease"
)

// SongFormat is the extension of written files.
const SongFormat = "mp3"

// PlaylistBaseName is the file name, without extension, of the playlist
// written next to the renamed files.
const PlaylistBaseName = "playlist"

// Summary reports what a run did.
type Summary struct {
	// Processed counts files that were tagged and copied or moved.
	Processed int

	// Skipped counts .mp3 files whose names are not cache names, and
	// queue entries without a cached file.
	Skipped int

	// Ignored counts entries without the .mp3 extension.
	Ignored int

	// Files lists the destination paths in processing order.
	Files []string

	// Playlist is the written playlist path, if any.
	Playlist string

	entries []audio.PlaylistEntry
}

func (s *Summary) add(dest string, info *model.SongInfo) {
	s.Processed++
	s.Files = append(s.Files, dest)
	s.entries = append(s.entries, audio.PlaylistEntry{
		Path:     dest,
		Artist:   info.Artist,
		Title:    info.Title,
		Duration: info.Duration,
	})
}

// Manager runs the rename pipeline: resolve, tag, copy or move.
//
// A Manager processes one file at a time; it is not safe for concurrent
// use.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	api          *netease.API
	resolver     *netease.Resolver
	tagger       *audio.Tagger
	imageService *ioutils.ImageService
	playlist     *audio.PlaylistCreator
	logger       *slog.Logger
}

// NewManager creates a Manager from settings.
func NewManager(settings *config.Settings, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	headers := nethttp.Header{}
	headers.Set("User-Agent", settings.API.UserAgent)

	client := http.NewClient(http.Options{
		Headers:    headers,
		RetryCount: settings.API.RetryCount,
		RetryDelay: settings.API.RetryDelay,
		Timeout:    settings.API.Timeout,
		Logger:     logger,
	})
	api := netease.NewAPI(client, settings.API.BaseURL, logger)

	var playlist *audio.PlaylistCreator
	if settings.Playlist.Create {
		format, err := audio.ParsePlaylistFormat(settings.Playlist.Format)
		if err != nil {
			return nil, err
		}
		playlist = audio.NewPlaylistCreator(format, settings.Playlist.Extended)
	}

	return &Manager{
		settings:     settings,
		httpClient:   client,
		api:          api,
		resolver:     netease.NewResolver(api),
		tagger:       audio.NewTagger(),
		imageService: ioutils.NewImageService(),
		playlist:     playlist,
		logger:       logger,
	}, nil
}

// API returns the API client, for the list expanders.
func (m *Manager) API() *netease.API {
	return m.api
}

// Resolver returns the song resolver.
func (m *Manager) Resolver() *netease.Resolver {
	return m.resolver
}

// Run renames every cache file in sourceDir.
//
// Entries are processed in name order. Non-.mp3 entries are ignored and
// malformed cache names are skipped with a warning. A resolver error
// stops the run and is returned together with the summary so far; tag
// errors are logged and the file is still copied or moved.
func (m *Manager) Run(ctx context.Context, sourceDir string) (Summary, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return Summary{}, fmt.Errorf("list source directory: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		cf, err := model.ParseCacheFileName(entry.Name())
		if errors.Is(err, model.ErrNotAudio) {
			summary.Ignored++
			continue
		}
		if err != nil {
			m.logger.Warn("skipping file", "file", entry.Name(), "err", err)
			summary.Skipped++
			continue
		}

		info, err := m.resolver.Resolve(ctx, cf.SongID)
		if err != nil {
			return summary, err
		}

		dest, err := m.Apply(ctx, info, filepath.Join(sourceDir, entry.Name()))
		if err != nil {
			return summary, err
		}
		summary.add(dest, info)
	}

	err = m.writePlaylist(ctx, &summary)
	return summary, err
}

// RunQueue renames the cache files of sourceDir that appear in the
// client's cached play queue, using the queue's own metadata instead of
// song detail requests.
func (m *Manager) RunQueue(ctx context.Context, sourceDir string, queue *netease.CachedQueue) (Summary, error) {
	cached, err := m.indexCacheFiles(sourceDir)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for info, err := range queue.SongInfos(ctx) {
		if err != nil {
			return summary, err
		}

		source, ok := cached[info.ID]
		if !ok {
			m.logger.Info("queued song not in cache", "song_id", info.ID, "artist", info.Artist, "title", info.Title)
			summary.Skipped++
			continue
		}
		// A song may be queued twice; only the first entry has a file.
		delete(cached, info.ID)

		dest, err := m.Apply(ctx, info, source)
		if err != nil {
			return summary, err
		}
		summary.add(dest, info)
	}

	err = m.writePlaylist(ctx, &summary)
	return summary, err
}

// indexCacheFiles maps song ids to cache file paths. When several files
// share an id the first by name wins.
func (m *Manager) indexCacheFiles(sourceDir string) (map[int64]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("list source directory: %w", err)
	}

	index := make(map[int64]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		cf, err := model.ParseCacheFileName(entry.Name())
		if err != nil {
			continue
		}
		if _, dup := index[cf.SongID]; !dup {
			index[cf.SongID] = filepath.Join(sourceDir, entry.Name())
		}
	}
	return index, nil
}

func (m *Manager) writePlaylist(ctx context.Context, summary *Summary) error {
	if m.playlist == nil || len(summary.entries) == 0 {
		return nil
	}

	path := filepath.Join(m.settings.DistPath, PlaylistBaseName+m.playlist.Format().Extension())
	content := m.playlist.CreatePlaylist(summary.entries)
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}

	summary.Playlist = path
	m.logger.Info("playlist written", "path", path, "songs", len(summary.entries))
	return nil
}
