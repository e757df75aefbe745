package netease

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/handiism/netease-rename/internal/model"
	"github.com/handiism/netease-rename/internal/netease/dto"
)

// DefaultQueuePath returns where the Linux desktop client keeps its last
// play queue, relative to the user's home directory.
func DefaultQueuePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cache", "netease-cloud-music", "StorageCache", "webdata", "file", "queue")
}

// PlaylistSongIDs fetches a playlist once and returns its track ids in
// the order the API lists them.
func (a *API) PlaylistSongIDs(ctx context.Context, playlistID int64) (iter.Seq[int64], error) {
	detail, err := a.PlaylistDetail(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return slices.Values(detail.Playlist.SongIDs()), nil
}

// AlbumSongIDs fetches an album once and returns its song ids in order.
func (a *API) AlbumSongIDs(ctx context.Context, albumID int64) (iter.Seq[int64], error) {
	detail, err := a.AlbumDetail(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return slices.Values(detail.Album.SongIDs()), nil
}

// CachedQueue is the desktop client's last play queue, read from disk.
type CachedQueue struct {
	api   *API
	items []dto.JSONQueueItem
}

// LoadCachedQueue reads and decodes the queue file at path. api is used
// for the per-entry album lookups of SongInfos.
func LoadCachedQueue(api *API, path string) (*CachedQueue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cached queue: %w", err)
	}

	var items []dto.JSONQueueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cached queue %s: %w", path, err)
	}
	return &CachedQueue{api: api, items: items}, nil
}

// Len returns the number of queued songs.
func (q *CachedQueue) Len() int {
	return len(q.items)
}

// SongIDs yields the queued song ids in file order.
func (q *CachedQueue) SongIDs() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := range q.items {
			if !yield(q.items[i].Track.ID) {
				return
			}
		}
	}
}

// SongInfos yields a record per queued song in file order, built from
// the queue entry itself plus one album detail request for album artist
// and year. Iteration stops after the first error is yielded.
func (q *CachedQueue) SongInfos(ctx context.Context) iter.Seq2[*model.SongInfo, error] {
	return func(yield func(*model.SongInfo, error) bool) {
		for i := range q.items {
			item := &q.items[i]

			album, err := q.api.AlbumDetail(ctx, item.Track.Album.ID)
			if err != nil {
				yield(nil, &SongError{SongID: item.Track.ID, Err: err})
				return
			}

			info, err := item.ToSongInfo(&album.Album)
			if err != nil {
				yield(nil, &SongError{SongID: item.Track.ID, Err: err})
				return
			}
			if !yield(info, nil) {
				return
			}
		}
	}
}
