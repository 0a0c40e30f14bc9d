// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/database"
	"github.com/felixamado/cageography/internal/dataset"
	"github.com/felixamado/cageography/internal/models"
	ws "github.com/felixamado/cageography/internal/websocket"
)

// testConfig returns a config wired to the testdata CSV and an in-memory
// DuckDB store. UpcomingFromYear is pinned so the fixture stays deterministic
// regardless of the wall clock.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Dataset: config.DatasetConfig{
			Path:             filepath.Join("testdata", "movies.csv"),
			Actor:            "Nicolas Cage",
			WindowYears:      30,
			IntervalYears:    5,
			UpcomingFromYear: 2027,
			TopRatedLimit:    10,
			TopGenres:        3,
			RatingBinLow:     2,
			RatingBinHigh:    8,
		},
		Database: config.DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "512MB",
			Threads:   2,
		},
		Server: config.ServerConfig{
			Host:    "127.0.0.1",
			Port:    8464,
			Timeout: 30 * time.Second,
		},
		API: config.APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			CacheTTL:        5 * time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

type testEnv struct {
	handler *Handler
	router  http.Handler
	hub     *ws.Hub
}

// setupTestAPI boots the full stack against the fixture: in-memory database,
// CSV ingest, running hub, and the chi route tree.
func setupTestAPI(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig(t)

	db, err := database.New(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	loader := dataset.NewService(cfg, db)
	count, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, count)

	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)

	handler := NewHandler(db, cfg, loader, hub)
	// Pin the clock so the analytics window is 1997-2026 no matter when the
	// tests run. The 2027 premiere stays outside it.
	handler.now = func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	return &testEnv{
		handler: handler,
		router:  NewRouter(handler, cfg).SetupChi(),
		hub:     hub,
	}
}

func (e *testEnv) request(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with a typed Data field so tests can
// decode payloads without interface assertions.
type envelope[T any] struct {
	Status   string           `json:"status"`
	Data     T                `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.HealthStatus](t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "healthy", resp.Data.Status)
	assert.Equal(t, Version, resp.Data.Version)
	assert.True(t, resp.Data.DatabaseConnected)
	assert.True(t, resp.Data.DatasetLoaded)
	assert.Equal(t, 6, resp.Data.MovieCount)
}

func TestHealthLiveAndReady(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMovies(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/movies")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.MovieList](t, rec)
	require.Equal(t, 6, resp.Data.Total)
	require.Len(t, resp.Data.Movies, 6)

	// Newest releases first; the scheduled premiere leads.
	assert.Equal(t, "Future Cage", resp.Data.Movies[0].Title)
	assert.Equal(t, 2027, resp.Data.Movies[0].Year)

	// Ingest normalization is visible through the API.
	titles := make([]string, 0, len(resp.Data.Movies))
	for _, m := range resp.Data.Movies {
		titles = append(titles, m.Title)
	}
	assert.Contains(t, titles, "Con Air")
	assert.NotContains(t, titles, "Not A Cage Movie")
}

func TestMoviesPagination(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/movies?limit=2&offset=1")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.MovieList](t, rec)
	assert.Equal(t, 6, resp.Data.Total)
	assert.Len(t, resp.Data.Movies, 2)
	assert.Equal(t, 2, resp.Data.Limit)
	assert.Equal(t, 1, resp.Data.Offset)
}

func TestMoviesLimitClamped(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/movies?limit=5000")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.MovieList](t, rec)
	assert.Equal(t, 100, resp.Data.Limit)
}

func TestMoviesInvalidParams(t *testing.T) {
	env := setupTestAPI(t)

	for _, target := range []string{
		"/api/v1/movies?limit=0",
		"/api/v1/movies?offset=-1",
	} {
		rec := env.request(t, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)

		resp := decodeEnvelope[json.RawMessage](t, rec)
		require.NotNil(t, resp.Error, target)
		assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	}
}

func TestSummary(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.FilmographySummary](t, rec)
	assert.Equal(t, "Nicolas Cage", resp.Data.Actor)
	// The 2027 premiere is outside the window.
	assert.Equal(t, 5, resp.Data.TotalMovies)
	// Action and Drama tie at 2; alphabetical tie-break.
	assert.Equal(t, "Action", resp.Data.TopGenre)
	assert.Equal(t, 2, resp.Data.TopGenreCount)
	// 1997 tie resolved by title order.
	assert.Equal(t, "Con Air", resp.Data.FirstMovieTitle)
	assert.Equal(t, 1997, resp.Data.FirstMovieYear)
	require.Len(t, resp.Data.Upcoming, 1)
	assert.Equal(t, "Future Cage", resp.Data.Upcoming[0].Title)
}

func TestUpcoming(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/upcoming")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.UpcomingMovie](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Future Cage", resp.Data[0].Title)
	assert.Equal(t, 2027, resp.Data[0].Year)
	assert.Equal(t, "https://example.com/future", resp.Data[0].URL)
}

func TestServerInfo(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/server-info")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[models.ServerInfo](t, rec)
	assert.Equal(t, Version, resp.Data.Version)
	assert.Equal(t, "Nicolas Cage", resp.Data.Actor)
	assert.Equal(t, 6, resp.Data.Dataset.TotalMovies)
	assert.Equal(t, 1997, resp.Data.Dataset.YearMin)
	assert.Equal(t, 2027, resp.Data.Dataset.YearMax)
	assert.NotNil(t, resp.Data.Dataset.LoadedAt)
}

func TestAnalyticsGenres(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.GenreCount](t, rec)
	require.Len(t, resp.Data, 3)
	// Action and Drama tie at 2 within the window; alphabetical tie-break.
	assert.Equal(t, models.GenreCount{Genre: "Action", MovieCount: 2}, resp.Data[0])
	assert.Equal(t, models.GenreCount{Genre: "Drama", MovieCount: 2}, resp.Data[1])
	assert.Equal(t, models.GenreCount{Genre: "Comedy", MovieCount: 1}, resp.Data[2])
	assert.False(t, resp.Metadata.Cached)

	// Second request is served from cache.
	rec = env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeEnvelope[[]models.GenreCount](t, rec)
	assert.True(t, resp.Metadata.Cached)
}

func TestAnalyticsTopRated(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/top-rated")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.TopRatedMovie](t, rec)
	// The unrated premiere is excluded; order is rating desc.
	require.Len(t, resp.Data, 5)
	assert.Equal(t, "Adaptation", resp.Data[0].Title)
	assert.Equal(t, "Face/Off", resp.Data[1].Title)
	assert.Equal(t, "The Unbearable Weight", resp.Data[2].Title)
	// 6.9 tie broken by vote count.
	assert.Equal(t, "Con Air", resp.Data[3].Title)
	assert.Equal(t, int64(95876), resp.Data[3].Votes)
	assert.Equal(t, "Pig", resp.Data[4].Title)
}

func TestAnalyticsTopRatedLimit(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/top-rated?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope[[]models.TopRatedMovie](t, rec)
	assert.Len(t, resp.Data, 2)

	for _, target := range []string{
		"/api/v1/analytics/top-rated?limit=0",
		"/api/v1/analytics/top-rated?limit=101",
	} {
		rec := env.request(t, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestAnalyticsRatingDistribution(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/rating-distribution")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.RatingBucket](t, rec)
	require.Len(t, resp.Data, 6)

	total := 0
	for i, bucket := range resp.Data {
		assert.Equal(t, 2+i, bucket.Low)
		assert.Equal(t, 3+i, bucket.High)
		total += bucket.MovieCount
	}
	// Five rated movies, all within [2, 8).
	assert.Equal(t, 5, total)
	assert.Equal(t, 2, resp.Data[4].MovieCount) // [6, 7)
	assert.Equal(t, 3, resp.Data[5].MovieCount) // [7, 8)
}

func TestAnalyticsGenreRatings(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/genre-ratings")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.GenreRatingStats](t, rec)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Action", resp.Data[0].Genre)
	assert.Equal(t, 2, resp.Data[0].MovieCount)
	// (6.9 + 7.3) / 2
	assert.InDelta(t, 7.1, resp.Data[0].AvgRating, 0.001)
	assert.Equal(t, "Drama", resp.Data[1].Genre)
	assert.Equal(t, 2, resp.Data[1].MovieCount)
	// (7.7 + 6.9) / 2
	assert.InDelta(t, 7.3, resp.Data[1].AvgRating, 0.001)
}

func TestAnalyticsIntervals(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/reception-intervals")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope[[]models.IntervalReception](t, rec)
	require.NotEmpty(t, resp.Data)

	// Buckets are contiguous and gap-free across the window.
	for i := 1; i < len(resp.Data); i++ {
		assert.Equal(t, resp.Data[i-1].IntervalEnd+1, resp.Data[i].IntervalStart)
	}

	rec = env.request(t, http.MethodGet, "/api/v1/analytics/top-genre-intervals")
	require.Equal(t, http.StatusOK, rec.Code)

	genreResp := decodeEnvelope[topGenreIntervalsPayload](t, rec)
	assert.Equal(t, "Action", genreResp.Data.Genre)
	assert.NotEmpty(t, genreResp.Data.Intervals)
}

func TestReloadClearsCache(t *testing.T) {
	env := setupTestAPI(t)

	// Prime the cache.
	env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	rec := env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	assert.True(t, decodeEnvelope[[]models.GenreCount](t, rec).Metadata.Cached)

	rec = env.request(t, http.MethodPost, "/api/v1/reload")
	require.Equal(t, http.StatusOK, rec.Code)

	reloadResp := decodeEnvelope[map[string]interface{}](t, rec)
	assert.EqualValues(t, 6, reloadResp.Data["movies"])

	rec = env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	assert.False(t, decodeEnvelope[[]models.GenreCount](t, rec).Metadata.Cached)
}

func TestNotFoundEnvelope(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/nonexistent")
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope[json.RawMessage](t, rec)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestMethodNotAllowedEnvelope(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodDelete, "/api/v1/movies")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	resp := decodeEnvelope[json.RawMessage](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMethodNotAllowed, resp.Error.Code)
}

func TestETagOnSuccess(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/api/v1/analytics/genres")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
}

func TestDashboard(t *testing.T) {
	env := setupTestAPI(t)

	rec := env.request(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Cageography")
}

// TestWebSocketReloadNotification runs the full loop: connect a dashboard
// client, trigger a reload over HTTP, and expect the broadcast.
func TestWebSocketReloadNotification(t *testing.T) {
	env := setupTestAPI(t)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	conn, resp, err := gorillaws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.Eventually(t, func() bool {
		return env.hub.GetClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	httpResp, err := http.Post(srv.URL+"/api/v1/reload", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, httpResp.StatusCode)
	httpResp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg ws.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, ws.MessageTypeDatasetReloaded, msg.Type)
}
