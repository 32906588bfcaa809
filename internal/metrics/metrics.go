package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	loads           int
	errors          int
	lastLoadLatency time.Duration
	lastTeams       int
	lastSchedules   int
}

// Recorder captures lightweight, in-memory metrics about content loads and
// forwards everything to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordContentLoad counts one load attempt against a content source.
func (r *Recorder) RecordContentLoad(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(source)
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordContentLoad(source, duration, err)
	}
}

// RecordContentSize stores how many teams and schedules the last successful load returned.
func (r *Recorder) RecordContentSize(source string, teams, schedules int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStatsLocked(source)
	stats.lastTeams = teams
	stats.lastSchedules = schedules
	r.mu.Unlock()
}

// SourceLoads returns the total load attempts recorded for a source.
func (r *Recorder) SourceLoads(source string) int {
	return r.Snapshot(source).Loads
}

// SourceErrors returns the total failed loads recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastLoadLatency returns the last recorded latency for a source load.
func (r *Recorder) LastLoadLatency(source string) time.Duration {
	return r.Snapshot(source).LastLoadLatency
}

// Snapshot returns a copy of the current stats for the source.
type Snapshot struct {
	Loads           int
	Errors          int
	LastLoadLatency time.Duration
	LastTeams       int
	LastSchedules   int
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		LastLoadLatency: stats.lastLoadLatency,
		LastTeams:       stats.lastTeams,
		LastSchedules:   stats.lastSchedules,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordReloadCycle tracks reloader cycles and errors.
func (r *Recorder) RecordReloadCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordReload(duration, err)
}

// RecordRender tracks a schedule render on the given surface (page, embed, directive, api).
func (r *Recorder) RecordRender(surface string, matchdays int, hiddenPast bool) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRender(surface, matchdays, hiddenPast)
}

func (r *Recorder) ensureStatsLocked(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
