package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/netease-rename/internal/config"
	"github.com/handiism/netease-rename/internal/logging"
	"github.com/handiism/netease-rename/internal/netease"
	"github.com/handiism/netease-rename/internal/rename"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C20C0C"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

type options struct {
	configPath  string
	songIDList  string
	playlistID  int64
	albumID     int64
	cachedQueue bool
	output      string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "netease-rename",
		Short: "Rename and tag NetEase Cloud Music cache files",
		Long: `netease-rename turns the NetEase Cloud Music client's song cache
(files named <song id>-<bitrate>-<random>.mp3) into a library of
"<artist> - <title>.mp3" files with ID3 tags and album covers.

Metadata comes from the music.163.com API. With --song_id_list,
--playlist_id or --album_id nothing is renamed; the songs are listed
instead.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, &opts, args)
		},
	}

	f := cmd.Flags()
	f.SortFlags = false

	f.StringP("source_path", "s", config.DefaultSourcePath(), "client song cache directory")
	f.StringP("dist_path", "d", config.DefaultDistPath, "output directory, created when missing")
	f.BoolP("remove_source", "r", false, "move the cache files instead of copying them")
	f.StringVar(&opts.songIDList, "song_id_list", "", `list songs by id ("1 2 3" or "1, 2, 3") instead of renaming`)
	// Ids usually follow as separate arguments; with none the directory is renamed.
	f.Lookup("song_id_list").NoOptDefVal = " "
	f.Int64Var(&opts.playlistID, "playlist_id", 0, "list the songs of a playlist")
	f.Int64Var(&opts.albumID, "album_id", 0, "list the songs of an album")
	f.BoolVar(&opts.cachedQueue, "cached_queue", false, "rename using the client's cached play queue")
	f.String("queue_path", "", "cached play queue file (default "+netease.DefaultQueuePath()+")")
	f.Bool("no_cover", false, "do not embed album covers")
	f.Bool("asciify", false, "transliterate output file names to ASCII")
	f.StringVarP(&opts.output, "output", "o", rename.OutputText, "list output format: text, json, yaml")
	f.String("playlist", "", "write an m3u or pls playlist of the renamed files")
	f.Lookup("playlist").NoOptDefVal = "m3u"
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.ConfigDir()+"/config.yaml)")
	f.String("log_level", "info", "log level: debug, info, warn, error")
	f.String("log_format", "text", "log format: text, logfmt, json")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, args []string) error {
	// "--song_id_list 1 2 3" leaves 2 and 3 as arguments.
	if len(args) > 0 {
		if !cmd.Flags().Changed("song_id_list") {
			return fmt.Errorf("unexpected arguments %v", args)
		}
		opts.songIDList = strings.Join(append([]string{opts.songIDList}, args...), " ")
	}

	settings, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	manager, err := rename.NewManager(settings, logger)
	if err != nil {
		return err
	}

	ids, err := rename.ParseSongIDs(opts.songIDList)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case len(ids) > 0:
		return manager.ListSongs(ctx, slices.Values(ids), out, opts.output)

	case opts.playlistID != 0:
		songs, err := manager.API().PlaylistSongIDs(ctx, opts.playlistID)
		if err != nil {
			return err
		}
		return manager.ListSongs(ctx, songs, out, opts.output)

	case opts.albumID != 0:
		songs, err := manager.API().AlbumSongIDs(ctx, opts.albumID)
		if err != nil {
			return err
		}
		return manager.ListSongs(ctx, songs, out, opts.output)
	}

	printBanner(cmd.ErrOrStderr())

	var summary rename.Summary
	if opts.cachedQueue {
		queue, err := netease.LoadCachedQueue(manager.API(), settings.QueuePath)
		if err != nil {
			return err
		}
		logger.Info("cached queue loaded", "path", settings.QueuePath, "songs", queue.Len())
		summary, err = manager.RunQueue(ctx, settings.SourcePath, queue)
		printSummary(cmd.ErrOrStderr(), summary)
		return err
	}

	summary, err = manager.Run(ctx, settings.SourcePath)
	printSummary(cmd.ErrOrStderr(), summary)
	return err
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("♫ NetEase Cache Renamer"))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("━", 40)))
}

func printSummary(w io.Writer, s rename.Summary) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("━", 40)))
	fmt.Fprintln(w, doneStyle.Render(fmt.Sprintf("Renamed %d file(s)", s.Processed)),
		fmt.Sprintf("(%d skipped, %d ignored)", s.Skipped, s.Ignored))
	if s.Playlist != "" {
		fmt.Fprintln(w, "Playlist:", s.Playlist)
	}
}
