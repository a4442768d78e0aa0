package adapter

import (
	"cinetrack/internal/core/model"
	"cinetrack/internal/metrics"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

type catalogSource interface {
	FetchCatalog(ctx context.Context) ([]model.Movie, error)
}

type BreakerSettings struct {
	MaxFailures uint32        // consecutive failures before opening
	OpenTimeout time.Duration // time spent open before a half-open probe
}

// ResilientCatalog retries a catalog source and guards it with a circuit
// breaker. Every error it returns wraps model.ErrCatalogFetch.
type ResilientCatalog struct {
	next    catalogSource
	retry   int
	backoff time.Duration
	cb      *gobreaker.CircuitBreaker[[]model.Movie]
	log     *slog.Logger
}

func NewResilientCatalog(next catalogSource, retry int, bs BreakerSettings, logger *slog.Logger) *ResilientCatalog {
	if retry < 0 {
		retry = 0
	}
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 5
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	metrics.CatalogBreakerState.Set(0)
	cb := gobreaker.NewCircuitBreaker[[]model.Movie](gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 1,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			metrics.CatalogBreakerState.Set(stateToFloat(to))
			metrics.CatalogBreakerTransitions.WithLabelValues(from.String(), to.String()).Inc()
		},
		// a caller giving up is not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
	})

	return &ResilientCatalog{
		next:    next,
		retry:   retry,
		backoff: 150 * time.Millisecond,
		cb:      cb,
		log:     logger,
	}
}

func (c *ResilientCatalog) FetchCatalog(ctx context.Context) ([]model.Movie, error) {
	var lastErr error
	attempts := c.retry + 1
	for i := 0; i < attempts; i++ {
		movies, err := c.cb.Execute(func() ([]model.Movie, error) {
			return c.next.FetchCatalog(ctx)
		})
		if err == nil {
			metrics.CatalogFetches.WithLabelValues("ok").Inc()
			return movies, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CatalogFetches.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%w: %v", model.ErrCatalogFetch, err)
		}
		metrics.CatalogFetches.WithLabelValues("error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrCatalogFetch, ctxErr)
		}
		lastErr = err
		c.log.Warn("catalog fetch failed", "attempt", i+1, "of", attempts, "err", err)

		// simple backoff
		if i < attempts-1 {
			select {
			case <-time.After(time.Duration(i+1) * c.backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", model.ErrCatalogFetch, ctx.Err())
			}
		}
	}
	return nil, fmt.Errorf("%w: %w", model.ErrCatalogFetch, lastErr)
}

// State reports the breaker state as "closed", "half-open" or "open".
func (c *ResilientCatalog) State() string {
	return c.cb.State().String()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
