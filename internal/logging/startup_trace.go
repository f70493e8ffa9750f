package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records how long each startup phase of the overlay took, from
// process start to the first time the clock is shown. It only emits when the
// logger is at debug level or lower. Safe for use across goroutines.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at t0. A nil logger disables it.
func NewStartupTrace(logger *zerolog.Logger, t0 time.Time) *StartupTrace {
	if logger != nil && logger.GetLevel() > zerolog.DebugLevel {
		logger = nil
	}
	return &StartupTrace{t0: t0, logger: logger}
}

// Enabled returns whether the trace is active.
func (st *StartupTrace) Enabled() bool {
	return st != nil && st.logger != nil
}

// Mark records a milestone and logs its elapsed time and delta.
func (st *StartupTrace) Mark(name string) {
	if !st.Enabled() {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if !st.Enabled() {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

// Finish closes the trace and logs a one-line summary. Later marks are ignored.
func (st *StartupTrace) Finish() {
	if !st.Enabled() {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: clock shown")
}
