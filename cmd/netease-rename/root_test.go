package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/netease-rename/internal/netease"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/song/detail":
			if r.URL.Query().Get("id") != "186016" {
				fmt.Fprint(w, `{"code":200,"songs":[]}`)
				return
			}
			fmt.Fprint(w, `{"code":200,"songs":[{
				"id":186016,"name":"Svefn-g-englar",
				"ar":[{"id":1,"name":"Sigur Rós"}],
				"al":{"id":18905,"name":"Ágætis byrjun","picUrl":"http://127.0.0.1:1/cover.jpg"},
				"no":2,"cd":"1","publishTime":930000000000
			}]}`)
		case "/api/v6/playlist/detail":
			fmt.Fprint(w, `{"code":200,"playlist":{"id":1,"trackIds":[{"id":186016},{"id":186016}]}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// execute runs the root command with an isolated config environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	srv := fakeAPI(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NETEASE_RENAME_API_BASE_URL", srv.URL)
	t.Setenv("NETEASE_RENAME_API_RETRY_COUNT", "0")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_SongIDList(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"single value", []string{"--song_id_list", "186016"}},
		{"space separated", []string{"--song_id_list", "186016", "186016"}},
		{"comma separated", []string{"--song_id_list", "186016,", "186016"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			want := strings.Count(strings.Join(tt.args, " "), "186016")
			if got := strings.Count(out, "186016: Sigur Rós - Svefn-g-englar"); got != want {
				t.Errorf("listed %d songs, want %d:\n%s", got, want, out)
			}
		})
	}
}

func TestRoot_SongIDListNotFound(t *testing.T) {
	_, err := execute(t, "--song_id_list", "42")
	if !errors.Is(err, netease.ErrSongNotFound) {
		t.Errorf("err = %v, want ErrSongNotFound", err)
	}
}

func TestRoot_PlaylistJSON(t *testing.T) {
	out, err := execute(t, "--playlist_id", "1", "--output", "json")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if got := strings.Count(out, `"title":"Svefn-g-englar"`); got != 2 {
		t.Errorf("got %d songs:\n%s", got, out)
	}
}

func TestRoot_UnexpectedArgs(t *testing.T) {
	if _, err := execute(t, "186016"); err == nil {
		t.Error("expected error for positional arguments without --song_id_list")
	}
}

func writeCacheFile(t *testing.T) (source, cache string) {
	t.Helper()
	source = t.TempDir()
	cache = filepath.Join(source, "186016-320-4b1f.mp3")
	if err := os.WriteFile(cache, []byte{0xFF, 0xFB, 0x90, 0x64, 0, 0, 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	return source, cache
}

func TestRoot_Rename(t *testing.T) {
	source, cache := writeCacheFile(t)
	dist := filepath.Join(t.TempDir(), "music")

	if _, err := execute(t, "-s", source, "-d", dist, "-r", "--no_cover"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dist, "Sigur Rós - Svefn-g-englar.mp3")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(cache); !os.IsNotExist(err) {
		t.Error("cache file kept despite --remove_source")
	}
}

func TestRoot_EmptySongIDListRenames(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bare flag", []string{"--song_id_list"}},
		{"empty value", []string{"--song_id_list", ""}},
		{"empty assignment", []string{"--song_id_list="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, _ := writeCacheFile(t)
			dist := filepath.Join(t.TempDir(), "music")

			args := append([]string{"-s", source, "-d", dist, "--no_cover"}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if out != "" {
				t.Errorf("unexpected list output %q", out)
			}
			if _, err := os.Stat(filepath.Join(dist, "Sigur Rós - Svefn-g-englar.mp3")); err != nil {
				t.Errorf("directory not renamed: %v", err)
			}
		})
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	if _, err := execute(t, "--log_level", "loud", "--song_id_list", "186016"); err == nil {
		t.Error("expected validation error")
	}
}
