// Package rename drives the cache renaming pipeline.
//
// For each cache file the Manager resolves metadata through the netease
// package, writes ID3 tags (with the album cover when enabled) and then
// copies or moves the file to "<dist>/<artist> - <title>.mp3". Files are
// processed one at a time in name order.
//
// # Basic Usage
//
//	manager, err := rename.NewManager(settings, logger)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := manager.Run(ctx, settings.SourcePath)
//
// # Modes
//
// Besides Run, RunQueue renames from the client's cached play queue and
// ListSongs prints song records without touching any file.
package rename
