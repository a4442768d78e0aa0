package core

import (
	"cinetrack/internal/core/model"
	"cinetrack/internal/metrics"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type CollectionStore interface {
	Membership
	EntryReader
	Entries() []model.CollectionEntry
	ToggleWatched(id int) model.CollectionEntry
	ToggleFavorite(id int) model.CollectionEntry
}

type CatalogProvider interface {
	FetchCatalog(ctx context.Context) ([]model.Movie, error)
}

// errorLoadingMovies is what a failed screen shows the user.
const errorLoadingMovies = "Error loading movies"

type Service struct {
	Catalog    CatalogProvider
	Collection CollectionStore
	log        *slog.Logger

	mu      sync.RWMutex
	screens map[string]*screen
}

func NewService(catalog CatalogProvider, collection CollectionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Catalog:    catalog,
		Collection: collection,
		log:        logger,
		screens:    make(map[string]*screen),
	}
}

// screen is the explicit state behind one activation of Home, Discover or Diary.
type screen struct {
	mu        sync.Mutex
	id        string
	kind      model.ScreenKind
	status    model.ScreenStatus
	errMsg    string
	catalog   []model.Movie
	selection model.ViewSelection
}

// OpenScreen activates a screen and fetches its catalog once. A failed
// fetch still registers the screen (status failed) so the caller can
// render the error and ask for a reload; the returned error wraps
// model.ErrCatalogFetch in that case.
func (s *Service) OpenScreen(ctx context.Context, kind model.ScreenKind) (model.ScreenState, error) {
	if !kind.Valid() {
		return model.ScreenState{}, fmt.Errorf("%w: unknown screen %q", model.ErrValidation, kind)
	}
	sc := &screen{
		id:        uuid.NewString(),
		kind:      kind,
		status:    model.ScreenLoading,
		selection: model.ViewSelection{Category: kind.DefaultCategory()},
	}

	s.mu.Lock()
	s.screens[sc.id] = sc
	s.mu.Unlock()
	metrics.OpenScreens.Inc()

	err := s.load(ctx, sc)
	return s.render(sc), err
}

func (s *Service) ReloadScreen(ctx context.Context, id string) (model.ScreenState, error) {
	sc, err := s.lookup(id)
	if err != nil {
		return model.ScreenState{}, err
	}
	err = s.load(ctx, sc)
	return s.render(sc), err
}

func (s *Service) SetCategory(id string, c model.Category) (model.ScreenState, error) {
	sc, err := s.lookup(id)
	if err != nil {
		return model.ScreenState{}, err
	}
	if !sc.kind.Accepts(c) {
		return model.ScreenState{}, fmt.Errorf("%w: category %q not available on %s", model.ErrValidation, c, sc.kind)
	}
	sc.mu.Lock()
	sc.selection.Category = c
	sc.mu.Unlock()
	return s.render(sc), nil
}

func (s *Service) SetQuery(id, q string) (model.ScreenState, error) {
	sc, err := s.lookup(id)
	if err != nil {
		return model.ScreenState{}, err
	}
	sc.mu.Lock()
	sc.selection.Query = q
	sc.mu.Unlock()
	return s.render(sc), nil
}

func (s *Service) RenderScreen(id string) (model.ScreenState, error) {
	sc, err := s.lookup(id)
	if err != nil {
		return model.ScreenState{}, err
	}
	return s.render(sc), nil
}

func (s *Service) CloseScreen(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screens[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.screens, id)
	metrics.OpenScreens.Dec()
	return nil
}

// Browse fetches the catalog and computes one view without opening a screen.
func (s *Service) Browse(ctx context.Context, sel model.ViewSelection) (model.View, error) {
	catalog, err := s.fetch(ctx)
	if err != nil {
		return model.View{}, err
	}
	return model.View{
		Selection: sel,
		Movies:    Cards(s.compute(catalog, sel), s.Collection),
		Counts:    DiaryCounts(catalog, s.Collection),
	}, nil
}

// GetMovie is the detail lookup; ids are opaque keys.
func (s *Service) GetMovie(ctx context.Context, id int) (model.MovieCard, error) {
	catalog, err := s.fetch(ctx)
	if err != nil {
		return model.MovieCard{}, err
	}
	for _, m := range catalog {
		if m.ID == id {
			return Cards([]model.Movie{m}, s.Collection)[0], nil
		}
	}
	return model.MovieCard{}, model.ErrNotFound
}

func (s *Service) ToggleWatched(id int) model.CollectionEntry {
	e := s.Collection.ToggleWatched(id)
	s.log.Debug("toggled watched", "movie_id", id, "watched", e.Watched)
	return e
}

func (s *Service) ToggleFavorite(id int) model.CollectionEntry {
	e := s.Collection.ToggleFavorite(id)
	s.log.Debug("toggled favorite", "movie_id", id, "favorite", e.Favorite)
	return e
}

func (s *Service) Collections() []model.CollectionEntry {
	return s.Collection.Entries()
}

// helpers
func (s *Service) lookup(id string) (*screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.screens[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return sc, nil
}

func (s *Service) fetch(ctx context.Context) ([]model.Movie, error) {
	catalog, err := s.Catalog.FetchCatalog(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrCatalogFetch) {
			err = fmt.Errorf("%w: %w", model.ErrCatalogFetch, err)
		}
		return nil, err
	}
	return catalog, nil
}

// load runs the fetch outside the screen lock; only the result is applied under it.
func (s *Service) load(ctx context.Context, sc *screen) error {
	sc.mu.Lock()
	sc.status = model.ScreenLoading
	sc.errMsg = ""
	sc.mu.Unlock()

	catalog, err := s.fetch(ctx)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if err != nil {
		s.log.Error("screen catalog fetch failed", "screen_id", sc.id, "kind", sc.kind, "err", err)
		sc.status = model.ScreenFailed
		sc.errMsg = errorLoadingMovies
		return err
	}
	sc.catalog = catalog
	sc.status = model.ScreenReady
	s.log.Info("screen ready", "screen_id", sc.id, "kind", sc.kind, "movies", len(catalog))
	return nil
}

func (s *Service) render(sc *screen) model.ScreenState {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	st := model.ScreenState{
		ID:        sc.id,
		Kind:      sc.kind,
		Status:    sc.status,
		Error:     sc.errMsg,
		Selection: sc.selection,
		Movies:    []model.MovieCard{},
	}
	if sc.status != model.ScreenReady {
		return st
	}
	st.Movies = Cards(s.compute(sc.catalog, sc.selection), s.Collection)
	if sc.kind == model.ScreenDiary {
		c := DiaryCounts(sc.catalog, s.Collection)
		st.Counts = &c
	}
	return st
}

func (s *Service) compute(catalog []model.Movie, sel model.ViewSelection) []model.Movie {
	label := string(model.CategoryPopular)
	switch sel.Category {
	case model.CategoryTrending, model.CategoryNew, model.CategoryWatched, model.CategoryFavorites:
		label = string(sel.Category)
	}
	metrics.ViewComputations.WithLabelValues(label).Inc()
	return ComputeView(catalog, s.Collection, sel)
}
