// Package app wires configuration, providers, prompts, and the simulator
// launcher into the interactive session loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"mlb-pitch-sim/internal/cli"
	"mlb-pitch-sim/internal/config"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/logging"
	"mlb-pitch-sim/internal/metrics"
	"mlb-pitch-sim/internal/providers"
	"mlb-pitch-sim/internal/sim"
	"mlb-pitch-sim/internal/simparams"
	"mlb-pitch-sim/internal/timeutil"
)

// launchPause gives the console a beat before the simulator takes over.
const launchPause = 500 * time.Millisecond

// Launcher is the slice of sim.Launcher the session needs.
type Launcher interface {
	Launch(ctx context.Context, args []string) error
}

// Options configures a Session. Config and Logger are required; the rest
// default to production wiring and exist for tests.
type Options struct {
	Config   config.Config
	Logger   *slog.Logger
	Input    io.Reader
	Output   io.Writer
	Provider providers.DataProvider
	Launcher Launcher
	Recorder *metrics.Recorder
}

// Session runs the interactive prompt-fetch-simulate loop.
type Session struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	prompter *cli.Prompter
	provider providers.DataProvider
	launcher Launcher
	out      io.Writer

	metricsHandler http.Handler
	shutdown       func(context.Context) error
	sleep          func(time.Duration)
}

// New assembles a Session from options, setting up telemetry, the provider,
// and the launcher where they were not injected.
func New(opts Options) (*Session, error) {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	recorder := opts.Recorder
	var handler http.Handler
	shutdown := func(context.Context) error { return nil }
	if recorder == nil {
		var err error
		recorder, handler, shutdown, err = metrics.Setup(context.Background(), metrics.TelemetryConfig{
			Enabled:      opts.Config.Metrics.Enabled,
			ServiceName:  opts.Config.Metrics.ServiceName,
			OtlpEndpoint: opts.Config.Metrics.OtlpEndpoint,
			OtlpInsecure: opts.Config.Metrics.OtlpInsecure,
		})
		if err != nil {
			return nil, fmt.Errorf("set up telemetry: %w", err)
		}
	}

	provider := opts.Provider
	if provider == nil {
		var err error
		provider, err = newProvider(opts.Config, opts.Logger, recorder)
		if err != nil {
			return nil, err
		}
	}

	launch := opts.Launcher
	if launch == nil {
		var err error
		launch, err = sim.New(sim.Config{
			Platform:    opts.Config.Sim.Platform,
			WindowsPath: opts.Config.Sim.WindowsPath,
			MacPath:     opts.Config.Sim.MacPath,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Session{
		cfg:            opts.Config,
		logger:         opts.Logger,
		recorder:       recorder,
		prompter:       cli.NewPrompter(in, out, opts.Config.MaxGamesToShow),
		provider:       provider,
		launcher:       launch,
		out:            out,
		metricsHandler: handler,
		shutdown:       shutdown,
		sleep:          time.Sleep,
	}, nil
}

// Run drives the session until the user declines a rerun or the context is
// canceled. A failed cycle is reported on the console and offered a rerun,
// never a crash.
func (s *Session) Run(ctx context.Context) error {
	stopMetrics := s.serveMetrics()
	defer stopMetrics()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "telemetry shutdown failed", err)
		}
	}()

	s.prompter.Title()

	for {
		start := time.Now()
		err := s.cycle(ctx)
		s.recorder.RecordSessionCycle(time.Since(start), err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logging.Warn(s.logger, "session cycle failed", "error", err)
		}

		fmt.Fprintln(s.out)
		if !s.prompter.Rerun() {
			break
		}
		fmt.Fprintln(s.out)
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Program exit successful.")
	return nil
}

// cycle runs one full pass: date window, teams, game, pitch, launch.
func (s *Session) cycle(ctx context.Context) error {
	startDate := s.prompter.StartDate()
	fmt.Fprintln(s.out)

	endDate := s.prompter.EndDate(startDate)
	fmt.Fprintln(s.out)

	season := timeutil.SeasonOf(startDate)

	lookup := cli.TeamLookup(func(ctx context.Context, name, season string) (teams.Team, error) {
		return s.provider.FetchTeamByName(ctx, name, season)
	})

	team := s.prompter.Team(ctx, lookup, season)
	fmt.Fprintln(s.out)

	opponent := s.prompter.Opponent(ctx, lookup, team, season)
	if team != nil {
		fmt.Fprintln(s.out)
	}

	filter := providers.ScheduleFilter{StartDate: startDate, EndDate: endDate}
	if team != nil {
		filter.TeamID = team.ID
	}
	if opponent != nil {
		filter.OpponentID = opponent.ID
	}

	gameList, err := s.provider.FetchGames(ctx, filter)
	if err != nil {
		if errors.Is(err, providers.ErrEmpty) {
			fmt.Fprintln(s.out, "No games found!")
		} else {
			fmt.Fprintln(s.out, "Fetching games failed. Please try again.")
		}
		return fmt.Errorf("fetch games: %w", err)
	}

	game := s.prompter.Game(gameList)
	fmt.Fprintln(s.out)

	pitchList, err := s.provider.FetchPitches(ctx, game)
	if err != nil {
		if errors.Is(err, providers.ErrEmpty) {
			fmt.Fprintln(s.out, "No pitches found for that game!")
		} else {
			fmt.Fprintln(s.out, "Fetching pitches failed. Please try again.")
		}
		return fmt.Errorf("fetch pitches: %w", err)
	}

	pitch := s.prompter.Pitch(pitchList)
	fmt.Fprintln(s.out)

	params, missing := simparams.Extract(pitch)
	if len(missing) > 0 {
		logging.Warn(s.logger, "pitch data incomplete, passing placeholders",
			logging.FieldMissing, missing, logging.FieldGame, game.Link)
	}

	fmt.Fprintln(s.out, "Running the simulation...")
	fmt.Fprintln(s.out)
	s.sleep(launchPause)

	launchStart := time.Now()
	err = s.launcher.Launch(ctx, params.Args())
	s.recorder.RecordSimLaunch(time.Since(launchStart), err)
	if err != nil {
		fmt.Fprintf(s.out, "Simulation failed to run: %v\n", err)
		return fmt.Errorf("launch simulator: %w", err)
	}

	fmt.Fprintln(s.out, "Simulation ran successfully!")
	return nil
}

// serveMetrics exposes the Prometheus handler for the lifetime of the run
// when telemetry is enabled. Returns a stop function.
func (s *Session) serveMetrics() func() {
	if !s.cfg.Metrics.Enabled || s.metricsHandler == nil {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metricsHandler)
	srv := &http.Server{Addr: ":" + s.cfg.Metrics.Port, Handler: mux}

	go func() {
		logging.Info(s.logger, "metrics listener started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(s.logger, "metrics listener failed", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
