package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"mlb-pitch-sim/internal/config"
	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/metrics"
	"mlb-pitch-sim/internal/providers"
	"mlb-pitch-sim/internal/providers/fixture"
	"mlb-pitch-sim/internal/testutil"
)

type fakeLauncher struct {
	calls [][]string
	err   error
}

func (f *fakeLauncher) Launch(ctx context.Context, args []string) error {
	f.calls = append(f.calls, args)
	return f.err
}

// brokenScheduleProvider serves teams but fails the schedule fetch.
type brokenScheduleProvider struct {
	*fixture.Provider
	err error
}

func (p *brokenScheduleProvider) FetchGames(ctx context.Context, filter providers.ScheduleFilter) ([]games.Game, error) {
	return nil, p.err
}

func testConfig() config.Config {
	return config.Config{Provider: "fixture", MaxGamesToShow: 100}
}

func newTestSession(t *testing.T, input string, opts Options) (*Session, *strings.Builder) {
	t.Helper()

	out := &strings.Builder{}
	opts.Input = strings.NewReader(input)
	opts.Output = out
	if opts.Config.MaxGamesToShow == 0 {
		opts.Config = testConfig()
	}
	if opts.Logger == nil {
		logger, _ := testutil.NewBufferLogger()
		opts.Logger = logger
	}
	if opts.Provider == nil {
		opts.Provider = fixture.New()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NewRecorder()
	}

	s, err := New(opts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s.sleep = func(time.Duration) {}
	return s, out
}

// oneCycleInput scripts: title, start date, end date, no team, game 1,
// pitch 1, then no rerun.
const oneCycleInput = "\n2023-06-15\n2023-06-17\n\n1\n1\nn\n"

func TestRunFullCycle(t *testing.T) {
	launch := &fakeLauncher{}
	recorder := metrics.NewRecorder()
	s, out := newTestSession(t, oneCycleInput, Options{Launcher: launch, Recorder: recorder})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}

	if len(launch.calls) != 1 {
		t.Fatalf("expected 1 launch, got %d", len(launch.calls))
	}
	if len(launch.calls[0]) != 15 {
		t.Fatalf("expected 15 positional args, got %d", len(launch.calls[0]))
	}
	if launch.calls[0][0] != "3.4" {
		t.Fatalf("expected strikeZoneTop first, got %q", launch.calls[0][0])
	}

	for _, want := range []string{
		"Simulation ran successfully!",
		"Program exit successful.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output: %q", want, out.String())
		}
	}

	if total, failed := recorder.SessionCycles(); total != 1 || failed != 0 {
		t.Fatalf("expected 1 clean cycle, got total=%d failed=%d", total, failed)
	}
	if total, failed := recorder.SimLaunches(); total != 1 || failed != 0 {
		t.Fatalf("expected 1 clean launch, got total=%d failed=%d", total, failed)
	}
}

func TestRunRerunLoop(t *testing.T) {
	launch := &fakeLauncher{}
	recorder := metrics.NewRecorder()
	input := "\n" +
		"2023-06-15\n2023-06-17\n\n1\n1\ny\n" +
		"2023-06-15\n2023-06-17\n\n2\n1\nn\n"
	s, _ := newTestSession(t, input, Options{Launcher: launch, Recorder: recorder})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}

	if len(launch.calls) != 2 {
		t.Fatalf("expected 2 launches, got %d", len(launch.calls))
	}
	if total, _ := recorder.SessionCycles(); total != 2 {
		t.Fatalf("expected 2 cycles, got %d", total)
	}
}

func TestRunNoGamesFound(t *testing.T) {
	launch := &fakeLauncher{}
	recorder := metrics.NewRecorder()
	provider := &brokenScheduleProvider{
		Provider: fixture.New(),
		err:      fmt.Errorf("fixture games: %w", providers.ErrEmpty),
	}
	// title, dates, no team, then the failed fetch ends the cycle
	s, out := newTestSession(t, "\n2023-06-15\n2023-06-17\n\nn\n",
		Options{Launcher: launch, Recorder: recorder, Provider: provider})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}

	if !strings.Contains(out.String(), "No games found!") {
		t.Fatalf("missing empty-result message: %q", out.String())
	}
	if len(launch.calls) != 0 {
		t.Fatalf("launcher must not run without a game, got %d calls", len(launch.calls))
	}
	if total, failed := recorder.SessionCycles(); total != 1 || failed != 1 {
		t.Fatalf("expected 1 failed cycle, got total=%d failed=%d", total, failed)
	}
}

func TestRunTransportFailureMessage(t *testing.T) {
	provider := &brokenScheduleProvider{
		Provider: fixture.New(),
		err:      &providers.StatusError{Provider: "statsapi", Endpoint: "/api/v1/schedule", StatusCode: 503},
	}
	s, out := newTestSession(t, "\n2023-06-15\n2023-06-17\n\nn\n", Options{Launcher: &fakeLauncher{}, Provider: provider})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
	if !strings.Contains(out.String(), "Fetching games failed.") {
		t.Fatalf("missing failure message: %q", out.String())
	}
}

func TestRunLaunchFailure(t *testing.T) {
	launch := &fakeLauncher{err: fmt.Errorf("fork/exec: no such file")}
	recorder := metrics.NewRecorder()
	s, out := newTestSession(t, oneCycleInput, Options{Launcher: launch, Recorder: recorder})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("launch failure must not end the session, got %v", err)
	}

	if !strings.Contains(out.String(), "Simulation failed to run") {
		t.Fatalf("missing launch failure message: %q", out.String())
	}
	if total, failed := recorder.SimLaunches(); total != 1 || failed != 1 {
		t.Fatalf("expected 1 failed launch, got total=%d failed=%d", total, failed)
	}
	if _, failed := recorder.SessionCycles(); failed != 1 {
		t.Fatalf("expected failed cycle, got failed=%d", failed)
	}
}

func TestRunIncompletePitchStillLaunches(t *testing.T) {
	launch := &fakeLauncher{}
	logger, logs := testutil.NewBufferLogger()
	// pitch 2 in the fixture feed carries only startSpeed
	s, _ := newTestSession(t, "\n2023-06-15\n2023-06-17\n\n1\n2\nn\n",
		Options{Launcher: launch, Logger: logger})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}

	if len(launch.calls) != 1 {
		t.Fatalf("expected 1 launch, got %d", len(launch.calls))
	}
	args := launch.calls[0]
	if len(args) != 15 {
		t.Fatalf("expected 15 args, got %d", len(args))
	}
	placeholders := 0
	for _, a := range args {
		if a == "None" {
			placeholders++
		}
	}
	if placeholders == 0 {
		t.Fatal("expected placeholder args for missing measurements")
	}
	if !strings.Contains(logs.String(), "pitch data incomplete") {
		t.Fatalf("expected incomplete-data warning in logs: %q", logs.String())
	}
}

func TestRunTeamFilteredCycle(t *testing.T) {
	launch := &fakeLauncher{}
	input := "\n2023-06-15\n2023-06-17\noakland\nseattle\n1\n1\nn\n"
	s, out := newTestSession(t, input, Options{Launcher: launch})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}

	if !strings.Contains(out.String(), "Set team to Oakland Athletics (OAK).") {
		t.Fatalf("missing team confirmation: %q", out.String())
	}
	if !strings.Contains(out.String(), "Set opponent to SEA - Seattle Mariners.") {
		t.Fatalf("missing opponent confirmation: %q", out.String())
	}
	// only the OAK vs SEA fixture game matches both filters
	if !strings.Contains(out.String(), "Showing 1 of 1 games found...") {
		t.Fatalf("expected narrowed schedule: %q", out.String())
	}
}

func TestNewUnknownProvider(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	_, err := New(Options{
		Config: config.Config{Provider: "csv", MaxGamesToShow: 10},
		Logger: logger,
	})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
