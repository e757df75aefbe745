package netease

import (
	"context"
	"iter"

	"github.com/handiism/netease-rename/internal/model"
)

// Resolver turns song ids into metadata records.
//
// Example usage:
//
//	api := netease.NewAPI(client, "", logger)
//	resolver := netease.NewResolver(api)
//
//	info, err := resolver.Resolve(ctx, 186016)
//	if errors.Is(err, netease.ErrAntiScraping) {
//	    // stop, try again later
//	}
type Resolver struct {
	api *API
}

// NewResolver creates a Resolver backed by api.
func NewResolver(api *API) *Resolver {
	return &Resolver{api: api}
}

// Resolve fetches the song detail for songID and maps it to a record.
//
// The song detail request is retried on non-200 status (see
// http.Client.GetWithRetry). When the song's publish time is zero a
// single album detail request supplies the year.
//
// Errors are wrapped in *SongError. ErrAntiScraping, ErrSongNotFound and
// exhausted retries are all meant to stop the caller's run.
func (r *Resolver) Resolve(ctx context.Context, songID int64) (*model.SongInfo, error) {
	detail, err := r.api.SongDetail(ctx, songID)
	if err != nil {
		return nil, &SongError{SongID: songID, Err: err}
	}
	if len(detail.Songs) == 0 {
		return nil, &SongError{SongID: songID, Err: ErrSongNotFound}
	}

	song := &detail.Songs[0]

	publishTime := song.PublishTime
	if publishTime == 0 {
		r.api.logger.Debug("publish time missing, asking album", "song_id", songID, "album_id", song.Album.ID)
		album, err := r.api.AlbumDetail(ctx, song.Album.ID)
		if err != nil {
			return nil, &SongError{SongID: songID, Err: err}
		}
		publishTime = album.Album.PublishTime
	}

	info, err := song.ToSongInfo(songID, model.YearFromMillis(publishTime))
	if err != nil {
		return nil, &SongError{SongID: songID, Err: err}
	}
	return info, nil
}

// ResolveAll lazily resolves every id of ids in order.
//
// Iteration stops after the first error is yielded.
func (r *Resolver) ResolveAll(ctx context.Context, ids iter.Seq[int64]) iter.Seq2[*model.SongInfo, error] {
	return func(yield func(*model.SongInfo, error) bool) {
		for id := range ids {
			info, err := r.Resolve(ctx, id)
			if !yield(info, err) || err != nil {
				return
			}
		}
	}
}
