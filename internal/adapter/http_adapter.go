package adapter

import (
	"cinetrack/api"
	"cinetrack/internal/core/model"
	"cinetrack/pkg/util"
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

type CatalogService interface {
	Browse(ctx context.Context, sel model.ViewSelection) (model.View, error)
	GetMovie(ctx context.Context, id int) (model.MovieCard, error)
	ToggleWatched(id int) model.CollectionEntry
	ToggleFavorite(id int) model.CollectionEntry
	Collections() []model.CollectionEntry

	OpenScreen(ctx context.Context, kind model.ScreenKind) (model.ScreenState, error)
	ReloadScreen(ctx context.Context, id string) (model.ScreenState, error)
	RenderScreen(id string) (model.ScreenState, error)
	SetCategory(id string, c model.Category) (model.ScreenState, error)
	SetQuery(id, q string) (model.ScreenState, error)
	CloseScreen(id string) error
}

type Handler struct {
	Svc CatalogService
	log *slog.Logger
}

var _ api.ServerInterface = (*Handler)(nil)

func NewHTTPHandler(svc CatalogService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Svc: svc, log: logger}
}

type httpError struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string, details map[string]interface{}) {
	e := httpError{}
	e.Error.Code = code
	e.Error.Message = msg
	e.Error.Details = details
	writeJSON(w, status, e)
}

// fail maps core sentinel errors onto the error envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
	case errors.Is(err, model.ErrCatalogFetch):
		writeError(w, http.StatusBadGateway, "CATALOG_UNAVAILABLE", "Error loading movies", nil)
	default:
		h.log.Error("unhandled error", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}

// ParamErrorHandler renders parameter binding failures from the api router.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
}

func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request, params api.ListMoviesParams) {
	sel := model.ViewSelection{Category: model.ScreenHome.DefaultCategory(), Query: valueOr(params.Q, "")}
	if params.Category != nil {
		sel.Category = model.Category(*params.Category)
	}
	if !model.ScreenHome.Accepts(sel.Category) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "category must be trending, popular or new", nil)
		return
	}
	h.browse(w, r, sel)
}

func (h *Handler) GetDiary(w http.ResponseWriter, r *http.Request, params api.GetDiaryParams) {
	sel := model.ViewSelection{Category: model.ScreenDiary.DefaultCategory(), Query: valueOr(params.Q, "")}
	if params.Filter != nil {
		sel.Category = model.Category(*params.Filter)
	}
	if !model.ScreenDiary.Accepts(sel.Category) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "filter must be watched or favorites", nil)
		return
	}
	h.browse(w, r, sel)
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request, sel model.ViewSelection) {
	v, err := h.Svc.Browse(r.Context(), sel)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MovieList{
		Category: api.Category(v.Selection.Category),
		Query:    v.Selection.Query,
		Data:     toAPIMovies(v.Movies),
		Counts:   toAPICounts(v.Counts),
	})
}

func (h *Handler) GetMovieById(w http.ResponseWriter, r *http.Request, id api.MovieId) {
	if !validMovieID(w, id) {
		return
	}
	card, err := h.Svc.GetMovie(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAPIMovie(card))
}

func (h *Handler) ToggleWatched(w http.ResponseWriter, r *http.Request, id api.MovieId) {
	if !validMovieID(w, id) {
		return
	}
	writeJSON(w, http.StatusOK, toAPIEntry(h.Svc.ToggleWatched(id)))
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, id api.MovieId) {
	if !validMovieID(w, id) {
		return
	}
	writeJSON(w, http.StatusOK, toAPIEntry(h.Svc.ToggleFavorite(id)))
}

func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	entries := h.Svc.Collections()
	out := api.CollectionList{Data: make([]api.CollectionEntry, 0, len(entries))}
	for _, e := range entries {
		out.Data = append(out.Data, toAPIEntry(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) OpenScreen(w http.ResponseWriter, r *http.Request) {
	var body api.OpenScreenJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}
	st, err := h.Svc.OpenScreen(r.Context(), model.ScreenKind(body.Kind))
	switch {
	case err == nil:
		w.Header().Set("Location", "/api/v1/screens/"+st.ID)
		writeJSON(w, http.StatusCreated, toAPIScreen(st))
	case errors.Is(err, model.ErrCatalogFetch) && st.ID != "":
		// the screen exists in failed state; the client shows the error and may reload
		w.Header().Set("Location", "/api/v1/screens/"+st.ID)
		writeJSON(w, http.StatusBadGateway, toAPIScreen(st))
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request, id api.ScreenId) {
	st, err := h.Svc.RenderScreen(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAPIScreen(st))
}

func (h *Handler) UpdateScreen(w http.ResponseWriter, r *http.Request, id api.ScreenId) {
	var body api.UpdateScreenJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}

	var (
		st  model.ScreenState
		err error
	)
	if body.Category != nil {
		if st, err = h.Svc.SetCategory(id, model.Category(*body.Category)); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	if body.Query != nil {
		if st, err = h.Svc.SetQuery(id, *body.Query); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	if body.Category == nil && body.Query == nil {
		if st, err = h.Svc.RenderScreen(id); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, toAPIScreen(st))
}

func (h *Handler) ReloadScreen(w http.ResponseWriter, r *http.Request, id api.ScreenId) {
	st, err := h.Svc.ReloadScreen(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, toAPIScreen(st))
	case errors.Is(err, model.ErrCatalogFetch):
		writeJSON(w, http.StatusBadGateway, toAPIScreen(st))
	default:
		h.fail(w, r, err)
	}
}

func (h *Handler) CloseScreen(w http.ResponseWriter, r *http.Request, id api.ScreenId) {
	if err := h.Svc.CloseScreen(id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// helpers

// validMovieID enforces the path schema's minimum of 1.
func validMovieID(w http.ResponseWriter, id api.MovieId) bool {
	if id < 1 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "movie id must be a positive integer", nil)
		return false
	}
	return true
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func toAPIMovie(c model.MovieCard) api.Movie {
	genre := append([]string{}, c.Movie.Genre...)
	return api.Movie{
		Id:              c.Movie.ID,
		Title:           c.Movie.Title,
		Year:            c.Movie.Year,
		DurationMinutes: c.Movie.DurationMinutes,
		Genre:           genre,
		Rating:          c.Movie.Rating,
		ImageUrl:        c.Movie.ImageURL,
		Synopsis:        c.Movie.Synopsis,
		Director:        c.Movie.Director,
		Cast:            c.Movie.Cast,
		Watched:         c.Watched,
		Favorite:        c.Favorite,
	}
}

func toAPIMovies(cards []model.MovieCard) []api.Movie {
	out := make([]api.Movie, 0, len(cards))
	for _, c := range cards {
		out = append(out, toAPIMovie(c))
	}
	return out
}

func toAPICounts(c model.DiaryCounts) api.DiaryCounts {
	return api.DiaryCounts{Watched: c.Watched, Favorites: c.Favorites}
}

func toAPIEntry(e model.CollectionEntry) api.CollectionEntry {
	return api.CollectionEntry{MovieId: e.MovieID, Watched: e.Watched, Favorite: e.Favorite}
}

func toAPIScreen(st model.ScreenState) api.Screen {
	out := api.Screen{
		Id:       st.ID,
		Kind:     api.ScreenKind(st.Kind),
		Status:   api.ScreenStatus(st.Status),
		Category: api.Category(st.Selection.Category),
		Query:    st.Selection.Query,
		Movies:   toAPIMovies(st.Movies),
	}
	if st.Error != "" {
		out.Error = util.GetPtr(st.Error)
	}
	if st.Counts != nil {
		out.Counts = util.GetPtr(toAPICounts(*st.Counts))
	}
	return out
}
