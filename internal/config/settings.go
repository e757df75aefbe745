package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/handiism/netease-rename/internal/http"
	"github.com/handiism/netease-rename/internal/netease"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// NETEASE_RENAME_DIST_PATH or NETEASE_RENAME_API_RETRY_COUNT.
const EnvPrefix = "NETEASE_RENAME"

// Settings holds all configuration options.
type Settings struct {
	// SourcePath is the client's song cache directory.
	SourcePath string `mapstructure:"source_path" validate:"required"`

	// DistPath receives the renamed files. Only its last element is
	// created when missing.
	DistPath string `mapstructure:"dist_path" validate:"required"`

	// KeepSource copies instead of moving.
	KeepSource bool `mapstructure:"keep_source"`

	// SaveCover embeds the album cover.
	SaveCover bool `mapstructure:"save_cover"`

	// Asciify transliterates destination file names to ASCII.
	Asciify bool `mapstructure:"asciify"`

	// QueuePath is the client's cached play queue file.
	QueuePath string `mapstructure:"queue_path" validate:"required"`

	API      APISettings      `mapstructure:"api"`
	Cover    CoverSettings    `mapstructure:"cover"`
	Playlist PlaylistSettings `mapstructure:"playlist"`
	Log      LogSettings      `mapstructure:"log"`
}

// APISettings configures requests to the NetEase API.
type APISettings struct {
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent  string        `mapstructure:"user_agent" validate:"required"`
	RetryCount int           `mapstructure:"retry_count" validate:"gte=0"`
	RetryDelay time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	// Timeout bounds a single request. Zero, the default, waits as long
	// as the server takes; only the retry cap ends a run early.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// CoverSettings controls cover art preparation before embedding.
type CoverSettings struct {
	// MaxSize scales covers down to fit MaxSize x MaxSize. Zero keeps
	// the original size.
	MaxSize int `mapstructure:"max_size" validate:"gte=0"`
}

// PlaylistSettings controls the playlist written after a run.
type PlaylistSettings struct {
	Create   bool   `mapstructure:"create"`
	Format   string `mapstructure:"format" validate:"oneof=m3u pls"`
	Extended bool   `mapstructure:"extended"`
}

// LogSettings selects logger level and format.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text logfmt json"`
}

// DefaultSourcePath is where the Linux client caches songs.
func DefaultSourcePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".cache", "netease-cloud-music", "CachedSongs")
}

// DefaultDistPath is relative to the working directory.
const DefaultDistPath = "./output_music"

func setDefaults(v *viper.Viper) {
	v.SetDefault("source_path", DefaultSourcePath())
	v.SetDefault("dist_path", DefaultDistPath)
	v.SetDefault("keep_source", true)
	v.SetDefault("save_cover", true)
	v.SetDefault("asciify", false)
	v.SetDefault("queue_path", netease.DefaultQueuePath())

	v.SetDefault("api.base_url", netease.DefaultBaseURL)
	v.SetDefault("api.user_agent", http.DefaultUserAgent)
	v.SetDefault("api.retry_count", 10)
	v.SetDefault("api.retry_delay", time.Second)
	v.SetDefault("api.timeout", time.Duration(0))

	v.SetDefault("cover.max_size", 0)

	v.SetDefault("playlist.create", false)
	v.SetDefault("playlist.format", "m3u")
	v.SetDefault("playlist.extended", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// flagKeys maps command line flag names to settings keys.
var flagKeys = map[string]string{
	"source_path": "source_path",
	"dist_path":   "dist_path",
	"asciify":     "asciify",
	"queue_path":  "queue_path",
	"log_level":   "log.level",
	"log_format":  "log.format",
}

// Load reads settings from, in increasing precedence: defaults, the
// YAML config file, a .env file, the environment and flags.
//
// path may be empty, in which case config.yaml is looked up in
// ConfigDir() and the working directory, and a missing file is not an
// error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	settings.SourcePath = expandHome(settings.SourcePath)
	settings.DistPath = expandHome(settings.DistPath)
	settings.QueuePath = expandHome(settings.QueuePath)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	// Negative flags only ever switch a default off.
	if f := flags.Lookup("remove_source"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("keep_source", false)
	}
	if f := flags.Lookup("no_cover"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("save_cover", false)
	}
	if f := flags.Lookup("playlist"); f != nil && f.Changed {
		v.Set("playlist.create", true)
		v.Set("playlist.format", f.Value.String())
	}
	return nil
}

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/netease-rename (or its platform
// equivalent).
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "netease-rename")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
