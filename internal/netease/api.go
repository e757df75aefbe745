package netease

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/netease-rename/internal/http"
	"github.com/handiism/netease-rename/internal/netease/dto"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public NetEase Cloud Music host.
const DefaultBaseURL = "https://music.163.com"

// API issues requests against the song, album and playlist detail
// endpoints and decodes their JSON bodies.
type API struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewAPI creates an API rooted at baseURL. An empty baseURL means
// DefaultBaseURL.
func NewAPI(client *http.Client, baseURL string, logger *slog.Logger) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (a *API) songDetailURL(songID int64) string {
	id := strconv.FormatInt(songID, 10)
	q := url.Values{}
	q.Set("id", id)
	q.Set("c", fmt.Sprintf(`[{"id":"%s"}]`, id))
	return a.baseURL + "/api/v3/song/detail?" + q.Encode()
}

func (a *API) albumDetailURL(albumID int64) string {
	return a.baseURL + "/api/album/" + strconv.FormatInt(albumID, 10)
}

func (a *API) playlistDetailURL(playlistID int64) string {
	return a.baseURL + "/api/v6/playlist/detail?id=" + strconv.FormatInt(playlistID, 10)
}

// SongDetail fetches a song, retrying on non-200 status.
func (a *API) SongDetail(ctx context.Context, songID int64) (*dto.JSONSongDetail, error) {
	body, err := a.client.GetWithRetry(ctx, a.songDetailURL(songID))
	if err != nil {
		return nil, err
	}

	var detail dto.JSONSongDetail
	if err := decode(body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AlbumDetail fetches an album with a single request.
func (a *API) AlbumDetail(ctx context.Context, albumID int64) (*dto.JSONAlbumDetail, error) {
	body, err := a.client.Get(ctx, a.albumDetailURL(albumID))
	if err != nil {
		return nil, fmt.Errorf("album %d: %w", albumID, err)
	}

	var detail dto.JSONAlbumDetail
	if err := decode(body, &detail); err != nil {
		return nil, fmt.Errorf("album %d: %w", albumID, err)
	}
	return &detail, nil
}

// PlaylistDetail fetches a playlist with a single request.
func (a *API) PlaylistDetail(ctx context.Context, playlistID int64) (*dto.JSONPlaylistDetail, error) {
	body, err := a.client.Get(ctx, a.playlistDetailURL(playlistID))
	if err != nil {
		return nil, fmt.Errorf("playlist %d: %w", playlistID, err)
	}

	var detail dto.JSONPlaylistDetail
	if err := decode(body, &detail); err != nil {
		return nil, fmt.Errorf("playlist %d: %w", playlistID, err)
	}
	return &detail, nil
}

// decode checks the API code before unmarshalling body into v.
func decode(body []byte, v any) error {
	if !gjson.ValidBytes(body) {
		return ErrInvalidJSON
	}
	if code := gjson.GetBytes(body, "code"); code.Exists() && code.Int() == CodeAntiScraping {
		return ErrAntiScraping
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
