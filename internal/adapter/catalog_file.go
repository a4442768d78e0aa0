package adapter

import (
	"bytes"
	"cinetrack/internal/core/model"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FileCatalog serves the catalog from a JSON array of movie records on disk.
// The file is re-read on every fetch so edits show up on the next screen.
type FileCatalog struct {
	Path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{Path: path}
}

func (c *FileCatalog) FetchCatalog(ctx context.Context) ([]model.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", c.Path, err)
	}
	return DecodeCatalog(raw)
}

// DecodeCatalog parses and validates a JSON array of movie records.
func DecodeCatalog(raw []byte) ([]model.Movie, error) {
	var recs []movieRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	seen := make(map[int]struct{}, len(recs))
	out := make([]model.Movie, 0, len(recs))
	for i, r := range recs {
		if err := recordValidator().Struct(r); err != nil {
			return nil, fmt.Errorf("catalog: record %d: %w", i, err)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("catalog: record %d: duplicate id %d", i, r.ID)
		}
		seen[r.ID] = struct{}{}
		out = append(out, mapToMovie(r))
	}
	return out, nil
}

type movieRecord struct {
	ID              int        `json:"id" validate:"gt=0"`
	Title           string     `json:"title"`
	Year            int        `json:"year" validate:"gte=0"`
	DurationMinutes int        `json:"duration_minutes" validate:"gte=0"`
	Genre           genreField `json:"genre"`
	Rating          float64    `json:"rating" validate:"gte=0,lte=5"`
	ImageURL        string     `json:"image_url"`
	Synopsis        string     `json:"synopsis"`
	Director        string     `json:"director"`
	Cast            string     `json:"cast"`
}

// genreField accepts either "Drama, Thriller" or ["Drama", "Thriller"].
type genreField []string

func (g *genreField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*g = nil
		return nil
	}
	if b[0] == '[' {
		var tags []string
		if err := json.Unmarshal(b, &tags); err != nil {
			return err
		}
		*g = cleanTags(tags)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*g = splitGenre(s)
	return nil
}

func splitGenre(s string) []string {
	return cleanTags(strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' }))
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mapToMovie(r movieRecord) model.Movie {
	return model.Movie{
		ID:              r.ID,
		Title:           r.Title,
		Year:            r.Year,
		DurationMinutes: r.DurationMinutes,
		Genre:           append([]string(nil), r.Genre...),
		Rating:          r.Rating,
		ImageURL:        r.ImageURL,
		Synopsis:        r.Synopsis,
		Director:        r.Director,
		Cast:            r.Cast,
	}
}

// StaticCatalog serves a fixed list; every fetch returns a copy.
type StaticCatalog struct {
	movies []model.Movie
}

func NewStaticCatalog(movies ...model.Movie) *StaticCatalog {
	return &StaticCatalog{movies: copyMovies(movies)}
}

func (c *StaticCatalog) FetchCatalog(ctx context.Context) ([]model.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyMovies(c.movies), nil
}

func copyMovies(in []model.Movie) []model.Movie {
	out := make([]model.Movie, len(in))
	for i, m := range in {
		m.Genre = append([]string(nil), m.Genre...)
		out[i] = m
	}
	return out
}
