package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with bounded constant-backoff
// retries. Only transport-class failures are retried; empty results and
// schema mismatches return immediately.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts
// or interval are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r *retryingProvider) FetchTeams(ctx context.Context, season string) ([]teams.Team, error) {
	return retryFetch(ctx, r, "teams", func() ([]teams.Team, error) {
		return r.inner.FetchTeams(ctx, season)
	})
}

func (r *retryingProvider) FetchTeamByName(ctx context.Context, name, season string) (teams.Team, error) {
	return retryFetch(ctx, r, "team-by-name", func() (teams.Team, error) {
		return r.inner.FetchTeamByName(ctx, name, season)
	})
}

func (r *retryingProvider) FetchGames(ctx context.Context, filter ScheduleFilter) ([]games.Game, error) {
	return retryFetch(ctx, r, "schedule", func() ([]games.Game, error) {
		return r.inner.FetchGames(ctx, filter)
	})
}

func (r *retryingProvider) FetchPitches(ctx context.Context, game games.Game) ([]pitches.Pitch, error) {
	return retryFetch(ctx, r, "pitches", func() ([]pitches.Pitch, error) {
		return r.inner.FetchPitches(ctx, game)
	})
}

func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var result T
	attempt := 0

	operation := func() error {
		attempt++
		start := time.Now()
		value, err := fn()
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)

		if err != nil {
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "fetch retry",
				"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			return err
		}

		result = value
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.interval), uint64(r.maxAttempts-1)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "fetch failed",
			"op", op, "attempts", attempt, "err", err)
		return result, err
	}
	return result, nil
}
