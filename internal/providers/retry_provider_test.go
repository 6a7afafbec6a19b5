package providers

import (
	"context"
	"testing"
	"time"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/metrics"
	"mlb-pitch-sim/internal/testutil"
)

type scriptedProvider struct {
	teamErrs  []error
	teamCalls int
	games     []games.Game
	gameErr   error
	gameCalls int
}

func (s *scriptedProvider) FetchTeams(ctx context.Context, season string) ([]teams.Team, error) {
	err := s.teamErrs[s.teamCalls]
	s.teamCalls++
	if err != nil {
		return nil, err
	}
	return []teams.Team{{ID: "133", Name: "Oakland Athletics"}}, nil
}

func (s *scriptedProvider) FetchTeamByName(ctx context.Context, name, season string) (teams.Team, error) {
	list, err := s.FetchTeams(ctx, season)
	if err != nil {
		return teams.Team{}, err
	}
	return list[0], nil
}

func (s *scriptedProvider) FetchGames(ctx context.Context, filter ScheduleFilter) ([]games.Game, error) {
	s.gameCalls++
	return s.games, s.gameErr
}

func (s *scriptedProvider) FetchPitches(ctx context.Context, game games.Game) ([]pitches.Pitch, error) {
	return nil, ErrEmpty
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	inner := &scriptedProvider{
		teamErrs: []error{&StatusError{Provider: "statsapi", StatusCode: 503}, nil},
	}

	p := NewRetryingProvider(inner, logger, rec, "statsapi", 3, time.Millisecond)

	got, err := p.FetchTeams(context.Background(), "")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one team, got %d", len(got))
	}
	if inner.teamCalls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.teamCalls)
	}
	if rec.ProviderCalls("statsapi") != 2 || rec.ProviderErrors("statsapi") != 1 {
		t.Fatalf("unexpected metrics calls=%d errors=%d", rec.ProviderCalls("statsapi"), rec.ProviderErrors("statsapi"))
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := &scriptedProvider{
		teamErrs: []error{
			&StatusError{Provider: "statsapi", StatusCode: 500},
			&StatusError{Provider: "statsapi", StatusCode: 500},
			&StatusError{Provider: "statsapi", StatusCode: 500},
		},
	}

	p := NewRetryingProvider(inner, logger, metrics.NewRecorder(), "statsapi", 3, time.Millisecond)

	_, err := p.FetchTeams(context.Background(), "")
	if err == nil {
		t.Fatal("expected failure after exhausting attempts")
	}
	if inner.teamCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.teamCalls)
	}
	if _, ok := AsStatusError(err); !ok {
		t.Fatalf("expected StatusError surfaced, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected retry warnings logged")
	}
}

func TestRetryDoesNotRetryEmpty(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := &scriptedProvider{teamErrs: []error{ErrEmpty, nil}}

	p := NewRetryingProvider(inner, logger, metrics.NewRecorder(), "statsapi", 3, time.Millisecond)

	_, err := p.FetchTeams(context.Background(), "")
	if err != ErrEmpty {
		t.Fatalf("expected ErrEmpty passed through, got %v", err)
	}
	if inner.teamCalls != 1 {
		t.Fatalf("empty result must not retry, got %d attempts", inner.teamCalls)
	}
}

func TestRetryDoesNotRetrySchemaError(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := &scriptedProvider{
		teamErrs: []error{&SchemaError{Provider: "statsapi", Path: "teams"}, nil},
	}

	p := NewRetryingProvider(inner, logger, metrics.NewRecorder(), "statsapi", 3, time.Millisecond)

	_, err := p.FetchTeams(context.Background(), "")
	if _, ok := AsSchemaError(err); !ok {
		t.Fatalf("expected SchemaError passed through, got %v", err)
	}
	if inner.teamCalls != 1 {
		t.Fatalf("schema mismatch must not retry, got %d attempts", inner.teamCalls)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := &scriptedProvider{
		teamErrs: []error{
			&StatusError{Provider: "statsapi", StatusCode: 500},
			&StatusError{Provider: "statsapi", StatusCode: 500},
			&StatusError{Provider: "statsapi", StatusCode: 500},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewRetryingProvider(inner, logger, metrics.NewRecorder(), "statsapi", 3, time.Hour)

	if _, err := p.FetchTeams(ctx, ""); err == nil {
		t.Fatal("expected error once context canceled")
	}
	if inner.teamCalls > 1 {
		t.Fatalf("canceled context must stop retries, got %d attempts", inner.teamCalls)
	}
}
