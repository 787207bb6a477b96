package wire_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"film-social/internal/data/cache"
	"film-social/internal/data/memory"
	"film-social/internal/wire"
	"film-social/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.NewRepository()
	filmCache := cache.NewFilmCache(nil, 0, zap.NewNop())
	app := wire.Wiring(repo, filmCache, zap.NewNop())

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, utils.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{
		"email":    "alice@example.com",
		"login":    "alice",
		"birthday": "1990-01-01",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, envelope.Status)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{
		"email":    "not-an-email",
		"login":    "bob",
		"birthday": "1990-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/users/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFilmLikeAndPopularEndpoints(t *testing.T) {
	srv := newTestServer(t)

	_, user := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{
		"email":    "alice@example.com",
		"login":    "alice",
		"birthday": "1990-01-01",
	})
	_, film := doJSON(t, http.MethodPost, srv.URL+"/films", map[string]any{
		"name":        "Heat",
		"releaseDate": "1995-12-15",
		"duration":    170,
		"mpa":         map[string]any{"id": 1},
	})

	userID := int(user.Data.(map[string]any)["id"].(float64))
	filmID := int(film.Data.(map[string]any)["id"].(float64))

	resp, _ := doJSON(t, http.MethodPut,
		srv.URL+"/films/"+strconv.Itoa(filmID)+"/like/"+strconv.Itoa(userID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := doJSON(t, http.MethodGet, srv.URL+"/films/popular?count=5", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, envelope.Data, 1)

	// feed now carries the like
	resp, envelope = doJSON(t, http.MethodGet, srv.URL+"/users/"+strconv.Itoa(userID)+"/feed", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, envelope.Data, 1)
}

func TestReviewConflictEndpoint(t *testing.T) {
	srv := newTestServer(t)

	_, user := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]any{
		"email":    "alice@example.com",
		"login":    "alice",
		"birthday": "1990-01-01",
	})
	_, film := doJSON(t, http.MethodPost, srv.URL+"/films", map[string]any{
		"name":        "Heat",
		"releaseDate": "1995-12-15",
		"duration":    170,
		"mpa":         map[string]any{"id": 1},
	})

	review := map[string]any{
		"content":    "great",
		"isPositive": true,
		"userId":     user.Data.(map[string]any)["id"],
		"filmId":     film.Data.(map[string]any)["id"],
	}

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/reviews", review)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/reviews", review)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
