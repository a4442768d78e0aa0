//go:build unit

package adapter

import (
	"bytes"
	"cinetrack/api"
	"cinetrack/internal/core"
	"cinetrack/internal/core/model"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Parasite", Year: 2019, Rating: 4.7, Genre: []string{"Drama"}},
		{ID: 2, Title: "Interstellar", Year: 2014, Rating: 4.5, Genre: []string{"Adventure"}},
		{ID: 3, Title: "Past Lives", Year: 2023, Rating: 4.2, Genre: []string{"Romance", "Drama"}},
	}
}

// test wiring: handler + real in-memory service (no network)
func newServer(t *testing.T, catalog catalogSource) (http.Handler, *core.Service) {
	t.Helper()
	if catalog == nil {
		catalog = NewStaticCatalog(testCatalog()...)
	}
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	svc := core.NewService(catalog, NewCollectionStore(), logger)
	h := NewHTTPHandler(svc, logger)
	return NewRouter(h, RouterConfig{}), svc
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	r := httptest.NewRequest(method, path, rdr)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func titles(ms []api.Movie) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Title)
	}
	return out
}

func TestListMovies_DefaultTrending(t *testing.T) {
	h, _ := newServer(t, nil)
	w := do(t, h, http.MethodGet, "/api/v1/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out api.MovieList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, api.Trending, out.Category)
	assert.Equal(t, []string{"Parasite", "Interstellar", "Past Lives"}, titles(out.Data))
}

func TestListMovies_CategoryAndQuery(t *testing.T) {
	h, _ := newServer(t, nil)

	w := do(t, h, http.MethodGet, "/api/v1/movies?category=new&q=DRAMA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out api.MovieList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, []string{"Past Lives", "Parasite"}, titles(out.Data))
	assert.Equal(t, "DRAMA", out.Query)

	w = do(t, h, http.MethodGet, "/api/v1/movies?category=popular", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, []string{"Parasite", "Interstellar", "Past Lives"}, titles(out.Data))
}

func TestListMovies_RejectsDiaryCategory(t *testing.T) {
	h, _ := newServer(t, nil)
	w := do(t, h, http.MethodGet, "/api/v1/movies?category=watched", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestGetMovie_200_404_400(t *testing.T) {
	h, _ := newServer(t, nil)

	w := do(t, h, http.MethodGet, "/api/v1/movies/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var m api.Movie
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	assert.Equal(t, "Interstellar", m.Title)
	assert.Equal(t, []string{"Adventure"}, m.Genre)

	w = do(t, h, http.MethodGet, "/api/v1/movies/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/movies/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestToggles_ReflectInDiaryAndCollection(t *testing.T) {
	h, _ := newServer(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/movies/1/watched", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var e api.CollectionEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.Equal(t, api.CollectionEntry{MovieId: 1, Watched: true}, e)

	w = do(t, h, http.MethodPost, "/api/v1/movies/3/favorite", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/diary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var diary api.MovieList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&diary))
	assert.Equal(t, api.Watched, diary.Category)
	assert.Equal(t, []string{"Parasite"}, titles(diary.Data))
	assert.Equal(t, api.DiaryCounts{Watched: 1, Favorites: 1}, diary.Counts)

	w = do(t, h, http.MethodGet, "/api/v1/diary?filter=favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&diary))
	assert.Equal(t, []string{"Past Lives"}, titles(diary.Data))

	w = do(t, h, http.MethodGet, "/api/v1/collection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var coll api.CollectionList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&coll))
	assert.Equal(t, []api.CollectionEntry{{MovieId: 1, Watched: true}, {MovieId: 3, Favorite: true}}, coll.Data)

	// second toggle restores
	w = do(t, h, http.MethodPost, "/api/v1/movies/1/watched", nil)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.False(t, e.Watched)
}

func TestDiary_RejectsHomeFilter(t *testing.T) {
	h, _ := newServer(t, nil)
	w := do(t, h, http.MethodGet, "/api/v1/diary?filter=trending", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScreens_Lifecycle(t *testing.T) {
	h, _ := newServer(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/screens", map[string]any{"kind": "home"})
	require.Equal(t, http.StatusCreated, w.Code)
	loc := w.Header().Get("Location")
	require.NotEmpty(t, loc)

	var sc api.Screen
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	assert.Equal(t, api.Ready, sc.Status)
	assert.Equal(t, api.Trending, sc.Category)
	assert.Equal(t, "/api/v1/screens/"+sc.Id, loc)
	assert.Len(t, sc.Movies, 3)

	w = do(t, h, http.MethodPatch, loc, map[string]any{"category": "new", "query": "inter"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	assert.Equal(t, api.New, sc.Category)
	assert.Equal(t, []string{"Interstellar"}, titles(sc.Movies))

	w = do(t, h, http.MethodPatch, loc, map[string]any{"category": "favorites"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, loc, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	assert.Equal(t, api.New, sc.Category)

	w = do(t, h, http.MethodDelete, loc, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, loc, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScreens_DiaryCounts(t *testing.T) {
	h, svc := newServer(t, nil)
	svc.ToggleFavorite(2)

	w := do(t, h, http.MethodPost, "/api/v1/screens", map[string]any{"kind": "diary"})
	require.Equal(t, http.StatusCreated, w.Code)
	var sc api.Screen
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	require.NotNil(t, sc.Counts)
	assert.Equal(t, api.DiaryCounts{Favorites: 1}, *sc.Counts)
	assert.Empty(t, sc.Movies)
}

func TestOpenScreen_Validation400(t *testing.T) {
	h, _ := newServer(t, nil)

	w := do(t, h, http.MethodPost, "/api/v1/screens", map[string]any{"kind": "settings"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/screens", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type switchSource struct {
	up atomic.Bool
}

func (s *switchSource) FetchCatalog(_ context.Context) ([]model.Movie, error) {
	if !s.up.Load() {
		return nil, errors.New("dial tcp: connection refused")
	}
	return testCatalog(), nil
}

func TestScreens_FailedFetchThenReload(t *testing.T) {
	src := &switchSource{}
	h, _ := newServer(t, src)

	w := do(t, h, http.MethodPost, "/api/v1/screens", map[string]any{"kind": "discover"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	var sc api.Screen
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	assert.Equal(t, api.Failed, sc.Status)
	require.NotNil(t, sc.Error)
	assert.Equal(t, "Error loading movies", *sc.Error)

	w = do(t, h, http.MethodPost, "/api/v1/screens/"+sc.Id+"/reload", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	src.up.Store(true)
	w = do(t, h, http.MethodPost, "/api/v1/screens/"+sc.Id+"/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sc))
	assert.Equal(t, api.Ready, sc.Status)
	assert.Nil(t, sc.Error)
	assert.Len(t, sc.Movies, 3)
}

func TestListMovies_CatalogDown502(t *testing.T) {
	h, _ := newServer(t, &switchSource{})
	w := do(t, h, http.MethodGet, "/api/v1/movies", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_UNAVAILABLE")
}

func TestRouter_RateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	svc := core.NewService(NewStaticCatalog(testCatalog()...), NewCollectionStore(), logger)
	h := NewRouter(NewHTTPHandler(svc, logger), RouterConfig{RateLimit: 2})

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/collection", nil).Code)
	}
	w := do(t, h, http.MethodGet, "/api/v1/collection", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRouter_Metrics(t *testing.T) {
	h, _ := newServer(t, nil)
	do(t, h, http.MethodPost, "/api/v1/movies/1/watched", nil)

	w := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cinetrack_collection_toggles_total")
}

func TestMovieRoutes_RejectNonPositiveID(t *testing.T) {
	h, svc := newServer(t, nil)

	for _, path := range []string{
		"/api/v1/movies/0",
		"/api/v1/movies/-1/watched",
		"/api/v1/movies/-7/favorite",
	} {
		method := http.MethodPost
		if path == "/api/v1/movies/0" {
			method = http.MethodGet
		}
		w := do(t, h, method, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR", path)
	}
	assert.Empty(t, svc.Collections())
}
