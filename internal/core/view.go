package core

import (
	"cinetrack/internal/core/model"
	"sort"
	"strings"
)

// Membership is the read side of the collection store.
type Membership interface {
	IsWatched(id int) bool
	IsFavorite(id int) bool
}

// EntryReader returns both flags of one movie in a single read.
type EntryReader interface {
	Entry(id int) model.CollectionEntry
}

// ComputeView returns the movies to show for sel, in display order.
// The flow is:
//
//  1. Keep movies whose title or any genre tag contains the query
//     (case-insensitive substring; empty query keeps everything).
//  2. Diary categories keep members of the matching collection,
//     in catalog order.
//  3. Trending and New stable-sort by rating and year, descending.
//     Popular (and anything unrecognised) keeps catalog order.
//
// The result is always a fresh slice; catalog is not modified.
func ComputeView(catalog []model.Movie, flags Membership, sel model.ViewSelection) []model.Movie {
	needle := normalizeQuery(sel.Query)

	out := make([]model.Movie, 0, len(catalog))
	for _, m := range catalog {
		if !matchQuery(m, needle) {
			continue
		}
		switch sel.Category {
		case model.CategoryWatched:
			if !flags.IsWatched(m.ID) {
				continue
			}
		case model.CategoryFavorites:
			if !flags.IsFavorite(m.ID) {
				continue
			}
		}
		out = append(out, m)
	}

	switch sel.Category {
	case model.CategoryTrending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case model.CategoryNew:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	}
	return out
}

// DiaryCounts sizes the Watched and Favorites partitions of the full catalog.
func DiaryCounts(catalog []model.Movie, flags Membership) model.DiaryCounts {
	var c model.DiaryCounts
	for _, m := range catalog {
		if flags.IsWatched(m.ID) {
			c.Watched++
		}
		if flags.IsFavorite(m.ID) {
			c.Favorites++
		}
	}
	return c
}

// Cards pairs each movie with its current collection flags.
func Cards(movies []model.Movie, entries EntryReader) []model.MovieCard {
	cards := make([]model.MovieCard, len(movies))
	for i, m := range movies {
		e := entries.Entry(m.ID)
		cards[i] = model.MovieCard{Movie: m, Watched: e.Watched, Favorite: e.Favorite}
	}
	return cards
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// matchQuery expects needle already lower-cased.
func matchQuery(m model.Movie, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Title), needle) {
		return true
	}
	for _, tag := range m.Genre {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
