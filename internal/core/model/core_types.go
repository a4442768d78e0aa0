package model

import (
	"errors"
)

// All core models live here together for simplicity.

var (
	ErrValidation   = errors.New("validation")
	ErrNotFound     = errors.New("not_found")
	ErrCatalogFetch = errors.New("catalog_fetch")
)

// Movie is immutable once fetched; nothing in core mutates it.
type Movie struct {
	ID              int
	Title           string
	Year            int
	DurationMinutes int
	Genre           []string // tags; a single-genre movie has one tag
	Rating          float64
	ImageURL        string
	Synopsis        string
	Director        string
	Cast            string
}

type CollectionEntry struct {
	MovieID  int
	Watched  bool
	Favorite bool
}

type Category string

const (
	CategoryTrending  Category = "trending"
	CategoryPopular   Category = "popular"
	CategoryNew       Category = "new"
	CategoryWatched   Category = "watched"
	CategoryFavorites Category = "favorites"
)

// IsDiary reports whether c selects by collection membership.
func (c Category) IsDiary() bool {
	return c == CategoryWatched || c == CategoryFavorites
}

type ViewSelection struct {
	Category Category
	Query    string
}

type DiaryCounts struct {
	Watched   int
	Favorites int
}

type ScreenKind string

const (
	ScreenHome     ScreenKind = "home"
	ScreenDiscover ScreenKind = "discover"
	ScreenDiary    ScreenKind = "diary"
)

// DefaultCategory is the tab selected when a screen is opened.
func (k ScreenKind) DefaultCategory() Category {
	switch k {
	case ScreenHome:
		return CategoryTrending
	case ScreenDiary:
		return CategoryWatched
	default:
		return CategoryPopular
	}
}

// Accepts reports whether c belongs to the enumeration shown by k.
func (k ScreenKind) Accepts(c Category) bool {
	switch k {
	case ScreenHome, ScreenDiscover:
		return c == CategoryTrending || c == CategoryPopular || c == CategoryNew
	case ScreenDiary:
		return c.IsDiary()
	}
	return false
}

func (k ScreenKind) Valid() bool {
	return k == ScreenHome || k == ScreenDiscover || k == ScreenDiary
}

type ScreenStatus string

const (
	ScreenLoading ScreenStatus = "loading"
	ScreenReady   ScreenStatus = "ready"
	ScreenFailed  ScreenStatus = "failed"
)

// MovieCard is a movie as the rendering layer consumes it.
type MovieCard struct {
	Movie    Movie
	Watched  bool
	Favorite bool
}

type ScreenState struct {
	ID        string
	Kind      ScreenKind
	Status    ScreenStatus
	Error     string
	Selection ViewSelection
	Movies    []MovieCard
	Counts    *DiaryCounts // diary screens only
}

type View struct {
	Selection ViewSelection
	Movies    []MovieCard
	Counts    DiaryCounts
}
