package adapter

import (
	"cinetrack/internal/core/model"
	"cinetrack/internal/metrics"
	"sort"
	"strconv"
	"sync"
)

type flags struct {
	watched  bool
	favorite bool
}

// CollectionStore keeps watched/favorite flags per movie id for the
// lifetime of the process. A missing entry reads as both flags false.
type CollectionStore struct {
	mu   sync.RWMutex
	byID map[int]flags
}

func NewCollectionStore() *CollectionStore {
	return &CollectionStore{byID: make(map[int]flags)}
}

func (s *CollectionStore) IsWatched(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id].watched
}

func (s *CollectionStore) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id].favorite
}

// Entry reads both flags for id under one lock.
func (s *CollectionStore) Entry(id int) model.CollectionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return toEntry(id, s.byID[id])
}

func (s *CollectionStore) ToggleWatched(id int) model.CollectionEntry {
	s.mu.Lock()
	f := s.byID[id]
	f.watched = !f.watched
	s.byID[id] = f
	s.mu.Unlock()

	metrics.CollectionToggles.WithLabelValues("watched", strconv.FormatBool(f.watched)).Inc()
	return toEntry(id, f)
}

func (s *CollectionStore) ToggleFavorite(id int) model.CollectionEntry {
	s.mu.Lock()
	f := s.byID[id]
	f.favorite = !f.favorite
	s.byID[id] = f
	s.mu.Unlock()

	metrics.CollectionToggles.WithLabelValues("favorite", strconv.FormatBool(f.favorite)).Inc()
	return toEntry(id, f)
}

// Entries returns every entry that has been toggled at least once, by id.
func (s *CollectionStore) Entries() []model.CollectionEntry {
	s.mu.RLock()
	out := make([]model.CollectionEntry, 0, len(s.byID))
	for id, f := range s.byID {
		out = append(out, toEntry(id, f))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].MovieID < out[j].MovieID })
	return out
}

func toEntry(id int, f flags) model.CollectionEntry {
	return model.CollectionEntry{MovieID: id, Watched: f.watched, Favorite: f.favorite}
}
