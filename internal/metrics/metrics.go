package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// session cycles, and simulator launches. It works standalone; when telemetry
// is enabled it also feeds the OpenTelemetry instruments.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*providerStats
	cycles      int
	cycleErrors int
	launches    int
	launchFails int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordSessionCycle tracks one full prompt-fetch-launch loop.
func (r *Recorder) RecordSessionCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycles++
	if err != nil {
		r.cycleErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSessionCycle(duration, err)
	}
}

// RecordSimLaunch tracks one simulator subprocess launch.
func (r *Recorder) RecordSimLaunch(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.launches++
	if err != nil {
		r.launchFails++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSimLaunch(duration, err)
	}
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// SessionCycles returns total and failed session cycles.
func (r *Recorder) SessionCycles() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles, r.cycleErrors
}

// SimLaunches returns total and failed simulator launches.
func (r *Recorder) SimLaunches() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.launches, r.launchFails
}
