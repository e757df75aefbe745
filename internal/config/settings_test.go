package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("source_path", "s", DefaultSourcePath(), "")
	fs.StringP("dist_path", "d", DefaultDistPath, "")
	fs.BoolP("remove_source", "r", false, "")
	fs.Bool("no_cover", false, "")
	fs.Bool("asciify", false, "")
	fs.String("queue_path", "", "")
	fs.String("playlist", "m3u", "")
	fs.String("log_level", "info", "")
	fs.String("log_format", "text", "")
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(writeConfig(t, "{}\n"), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !s.KeepSource || !s.SaveCover {
		t.Errorf("KeepSource/SaveCover = %v/%v, want true/true", s.KeepSource, s.SaveCover)
	}
	if s.DistPath != DefaultDistPath {
		t.Errorf("DistPath = %q", s.DistPath)
	}
	if !strings.HasSuffix(s.SourcePath, filepath.Join("netease-cloud-music", "CachedSongs")) {
		t.Errorf("SourcePath = %q", s.SourcePath)
	}
	if s.API.RetryCount != 10 || s.API.RetryDelay != time.Second {
		t.Errorf("retry = %d/%v, want 10/1s", s.API.RetryCount, s.API.RetryDelay)
	}
	if s.API.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0 (no request timeout)", s.API.Timeout)
	}
	if s.Playlist.Create {
		t.Error("playlist should be off by default")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
dist_path: /music/out
api:
  retry_count: 3
  retry_delay: 250ms
playlist:
  create: true
  format: pls
`)
	t.Setenv("NETEASE_RENAME_API_RETRY_COUNT", "5")
	t.Setenv("NETEASE_RENAME_LOG_LEVEL", "debug")

	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.DistPath != "/music/out" {
		t.Errorf("DistPath = %q", s.DistPath)
	}
	if s.API.RetryCount != 5 {
		t.Errorf("RetryCount = %d, want env value 5", s.API.RetryCount)
	}
	if s.API.RetryDelay != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v", s.API.RetryDelay)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", s.Log.Level)
	}
	if !s.Playlist.Create || s.Playlist.Format != "pls" {
		t.Errorf("Playlist = %+v", s.Playlist)
	}
}

func TestLoad_Flags(t *testing.T) {
	fs := testFlags()
	if err := fs.Parse([]string{"-s", "/cache", "-d", "/out", "-r", "--no_cover", "--playlist", "pls"}); err != nil {
		t.Fatal(err)
	}

	s, err := Load(writeConfig(t, "keep_source: true\n"), fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.SourcePath != "/cache" || s.DistPath != "/out" {
		t.Errorf("paths = %q, %q", s.SourcePath, s.DistPath)
	}
	if s.KeepSource {
		t.Error("-r should turn KeepSource off")
	}
	if s.SaveCover {
		t.Error("--no_cover should turn SaveCover off")
	}
	if !s.Playlist.Create || s.Playlist.Format != "pls" {
		t.Errorf("Playlist = %+v", s.Playlist)
	}
}

func TestLoad_UnchangedFlagsKeepConfig(t *testing.T) {
	fs := testFlags()
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	s, err := Load(writeConfig(t, "dist_path: /from/file\n"), fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.DistPath != "/from/file" {
		t.Errorf("DistPath = %q, want value from file", s.DistPath)
	}
	if !s.KeepSource || s.Playlist.Create {
		t.Errorf("unexpected overrides: %+v", s)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"bad playlist format", "playlist:\n  format: wpl\n"},
		{"negative retries", "api:\n  retry_count: -1\n"},
		{"bad base url", "api:\n  base_url: not a url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body), nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/Music"); got != filepath.Join(home, "Music") {
		t.Errorf("expandHome(~/Music) = %q", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("expandHome(/abs) = %q", got)
	}
}
