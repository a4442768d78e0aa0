//go:build unit

package core

import (
	"cinetrack/internal/adapter"
	"cinetrack/internal/core/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Parasite", Year: 2019, Rating: 4.7, Genre: []string{"Drama"}},
		{ID: 2, Title: "Interstellar", Year: 2014, Rating: 4.5, Genre: []string{"Adventure"}},
	}
}

func ids(ms []model.Movie) []int {
	out := make([]int, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestComputeView_Scenario(t *testing.T) {
	store := adapter.NewCollectionStore()
	catalog := scenarioCatalog()
	store.ToggleWatched(1)

	assert.Equal(t, []int{1}, ids(ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryWatched})))
	assert.Equal(t, []int{1, 2}, ids(ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryTrending})))
	assert.Equal(t, []int{2}, ids(ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryNew, Query: "inter"})))
}

func mixedCatalog() []model.Movie {
	return []model.Movie{
		{ID: 10, Title: "Alpha", Year: 2001, Rating: 3.0, Genre: []string{"Drama"}},
		{ID: 11, Title: "Bravo", Year: 2010, Rating: 4.5, Genre: []string{"Comedy", "Drama"}},
		{ID: 12, Title: "Charlie", Year: 2010, Rating: 3.0, Genre: []string{"Horror"}},
		{ID: 13, Title: "Delta Drama", Year: 1999, Rating: 4.5, Genre: nil},
		{ID: 14, Title: "Echo", Year: 2020, Rating: 1.0, Genre: []string{"Sci-Fi"}},
	}
}

func TestComputeView_TrendingStableByRating(t *testing.T) {
	out := ComputeView(mixedCatalog(), adapter.NewCollectionStore(), model.ViewSelection{Category: model.CategoryTrending})
	// 4.5 ties keep catalog order (11 before 13), 3.0 ties keep 10 before 12
	assert.Equal(t, []int{11, 13, 10, 12, 14}, ids(out))
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}
}

func TestComputeView_NewStableByYear(t *testing.T) {
	out := ComputeView(mixedCatalog(), adapter.NewCollectionStore(), model.ViewSelection{Category: model.CategoryNew})
	assert.Equal(t, []int{14, 11, 12, 10, 13}, ids(out))
}

func TestComputeView_PopularKeepsCatalogOrder(t *testing.T) {
	store := adapter.NewCollectionStore()
	assert.Equal(t, []int{10, 11, 12, 13, 14}, ids(ComputeView(mixedCatalog(), store, model.ViewSelection{Category: model.CategoryPopular})))
	// unset category behaves like popular
	assert.Equal(t, []int{10, 11, 12, 13, 14}, ids(ComputeView(mixedCatalog(), store, model.ViewSelection{})))
}

func TestComputeView_QueryMatchesTitleOrAnyGenreTag(t *testing.T) {
	store := adapter.NewCollectionStore()
	catalog := mixedCatalog()

	out := ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryPopular, Query: "DRAMA"})
	assert.Equal(t, []int{10, 11, 13}, ids(out))

	for _, q := range []string{"a", "ch", "sci", "zzz", "HOR"} {
		out := ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryPopular, Query: q})
		got := map[int]bool{}
		for _, m := range out {
			got[m.ID] = true
		}
		for _, m := range catalog {
			assert.Equal(t, matches(m, q), got[m.ID], "query %q movie %d", q, m.ID)
		}
	}
}

func matches(m model.Movie, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(m.Title), q) {
		return true
	}
	for _, g := range m.Genre {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

func TestComputeView_BlankQueryMatchesAll(t *testing.T) {
	out := ComputeView(mixedCatalog(), adapter.NewCollectionStore(), model.ViewSelection{Category: model.CategoryPopular, Query: "   "})
	assert.Len(t, out, 5)
}

func TestComputeView_DiaryFiltersThenMembership(t *testing.T) {
	store := adapter.NewCollectionStore()
	catalog := mixedCatalog()
	store.ToggleWatched(14)
	store.ToggleWatched(10)
	store.ToggleFavorite(11)
	store.ToggleFavorite(10)

	watched := ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryWatched})
	assert.Equal(t, []int{10, 14}, ids(watched))
	for _, m := range watched {
		assert.True(t, store.IsWatched(m.ID))
	}

	favs := ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryFavorites})
	assert.Equal(t, []int{10, 11}, ids(favs))

	favDrama := ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryFavorites, Query: "bra"})
	assert.Equal(t, []int{11}, ids(favDrama))

	// ids toggled but absent from the catalog never show up
	store.ToggleWatched(999)
	assert.Equal(t, []int{10, 14}, ids(ComputeView(catalog, store, model.ViewSelection{Category: model.CategoryWatched})))
}

func TestComputeView_DoesNotMutateInput(t *testing.T) {
	catalog := mixedCatalog()
	before := ids(catalog)
	out := ComputeView(catalog, adapter.NewCollectionStore(), model.ViewSelection{Category: model.CategoryTrending})
	assert.Equal(t, before, ids(catalog))

	out[0].Title = "changed"
	assert.NotEqual(t, "changed", catalog[1].Title)
}

func TestComputeView_EmptyCatalog(t *testing.T) {
	out := ComputeView(nil, adapter.NewCollectionStore(), model.ViewSelection{Category: model.CategoryNew, Query: "x"})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDiaryCounts_IgnoreQuery(t *testing.T) {
	store := adapter.NewCollectionStore()
	catalog := mixedCatalog()
	store.ToggleWatched(10)
	store.ToggleWatched(12)
	store.ToggleFavorite(12)
	store.ToggleWatched(999)

	c := DiaryCounts(catalog, store)
	assert.Equal(t, model.DiaryCounts{Watched: 2, Favorites: 1}, c)
}

func TestCards_CarryFlags(t *testing.T) {
	store := adapter.NewCollectionStore()
	store.ToggleFavorite(2)
	cards := Cards(scenarioCatalog(), store)
	require.Len(t, cards, 2)
	assert.False(t, cards[0].Favorite)
	assert.True(t, cards[1].Favorite)
	assert.False(t, cards[1].Watched)
}
