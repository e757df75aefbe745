// Package netease resolves NetEase Cloud Music song ids into metadata
// records and expands playlists, albums and the desktop client's cached
// play queue into song ids.
//
// # Resolving Songs
//
//	api := netease.NewAPI(client, netease.DefaultBaseURL, logger)
//	info, err := netease.NewResolver(api).Resolve(ctx, 186016)
//
// Resolve retries the song detail request while the status is not 200,
// and issues one album detail request when the song has no publish time.
// A response with code -460 yields ErrAntiScraping and an empty song
// list yields ErrSongNotFound.
//
// # Lists
//
//	ids, err := api.PlaylistSongIDs(ctx, playlistID)
//	for id := range ids {
//	    fmt.Println(id)
//	}
//
// The cached queue can produce records without any song detail request:
//
//	queue, err := netease.LoadCachedQueue(api, netease.DefaultQueuePath())
//	for info, err := range queue.SongInfos(ctx) {
//	    ...
//	}
//
// Queue records take the album artist from the album, whereas Resolve
// reuses the song's first artist.
package netease
