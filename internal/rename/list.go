package rename

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/handiism/netease-rename/internal/model"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by ListSongs.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ParseSongIDs splits "1 2 3" or "1, 2, 3" into ids.
func ParseSongIDs(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid song id %q", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListSongs resolves ids and prints them to w.
//
// Text output is one "id: artist - title" line per song with the
// artist column padded to a common display width, so it is written once
// every id has been resolved. JSON output is one object per line, YAML
// one document per song; both are written as songs resolve. The first
// resolver error stops the listing; songs resolved before it are still
// printed.
func (m *Manager) ListSongs(ctx context.Context, ids iter.Seq[int64], w io.Writer, format string) error {
	songs := m.resolver.ResolveAll(ctx, ids)

	switch format {
	case OutputText, "":
		return writeText(w, songs)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return writeEach(songs, enc.Encode)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := writeEach(songs, enc.Encode); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeEach(songs iter.Seq2[*model.SongInfo, error], encode func(any) error) error {
	for info, err := range songs {
		if err != nil {
			return err
		}
		if err := encode(info); err != nil {
			return fmt.Errorf("encode song %d: %w", info.ID, err)
		}
	}
	return nil
}

func writeText(w io.Writer, songs iter.Seq2[*model.SongInfo, error]) error {
	var (
		collected  []*model.SongInfo
		resolveErr error
		width      int
	)
	for info, err := range songs {
		if err != nil {
			resolveErr = err
			break
		}
		collected = append(collected, info)
		width = max(width, runewidth.StringWidth(info.Artist))
	}

	for _, info := range collected {
		artist := runewidth.FillRight(info.Artist, width)
		if _, err := fmt.Fprintf(w, "    %d: %s - %s\n", info.ID, artist, info.Title); err != nil {
			return err
		}
	}
	return resolveErr
}
