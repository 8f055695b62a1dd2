package obs

import "sync"

// ExpressionStats accumulates streaming statistics (mean, max, and a
// configurable set of percentiles) over samples taken from a single
// expression; core.ExpressionWatch feeds it one sample, the duration of
// the guard's true run, each time such a run ends. It is cheap enough to
// be fed from inside a state-machine step without becoming the
// bottleneck of the step itself.
type ExpressionStats struct {
	mu         sync.Mutex
	percentile []float64
	mq         *MultiQuantile
}

// NewExpressionStats returns a tracker for the given percentiles (each in
// [0, 1]).
func NewExpressionStats(percentiles ...float64) *ExpressionStats {
	return &ExpressionStats{
		percentile: append([]float64(nil), percentiles...),
		mq:         NewMultiQuantile(percentiles...),
	}
}

// Observe folds one sampled value into the running statistics.
func (s *ExpressionStats) Observe(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mq.Update(v)
}

// ExpressionStatsSnapshot is a point-in-time read of an ExpressionStats.
type ExpressionStatsSnapshot struct {
	Count      int
	Mean       float64
	Max        float64
	Percentile map[float64]float64
}

// Snapshot returns the current statistics. Safe to call concurrently with
// Observe.
func (s *ExpressionStats) Snapshot() ExpressionStatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := ExpressionStatsSnapshot{
		Count:      s.mq.Count(),
		Mean:       s.mq.Mean(),
		Max:        s.mq.Max(),
		Percentile: make(map[float64]float64, len(s.percentile)),
	}
	for i, p := range s.percentile {
		out.Percentile[p] = s.mq.Quantile(i)
	}
	return out
}

// StateResidency implements core.StepObserver, tracking how many
// nanoseconds the state machine spends in each state and the interval
// between consecutive Step calls, as streaming percentiles rather than a
// full histogram retained in memory.
type StateResidency struct {
	mu          sync.Mutex
	entryNs     map[uint32]uint64
	dwellByStat map[uint32]*MultiQuantile
	interval    *MultiQuantile
	lastStepNs  uint64
	haveLast    bool
	percentile  []float64
}

// NewStateResidency returns a StateResidency tracking the given
// percentiles for both per-state dwell time and step interval.
func NewStateResidency(percentiles ...float64) *StateResidency {
	return &StateResidency{
		entryNs:     make(map[uint32]uint64),
		dwellByStat: make(map[uint32]*MultiQuantile),
		interval:    NewMultiQuantile(percentiles...),
		percentile:  append([]float64(nil), percentiles...),
	}
}

// OnStep records the step interval and, on a state change, the dwell time
// just spent in the state being left.
func (r *StateResidency) OnStep(prevState, curState uint32, atNs uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.haveLast {
		r.interval.Update(float64(atNs - r.lastStepNs))
	}
	r.lastStepNs = atNs
	r.haveLast = true

	if _, ok := r.entryNs[prevState]; !ok {
		r.entryNs[prevState] = atNs
	}
	if curState != prevState {
		dwell := atNs - r.entryNs[prevState]
		mq, ok := r.dwellByStat[prevState]
		if !ok {
			mq = NewMultiQuantile(r.percentile...)
			r.dwellByStat[prevState] = mq
		}
		mq.Update(float64(dwell))
		r.entryNs[curState] = atNs
	}
}

// IntervalSnapshot returns the step-interval statistics.
func (r *StateResidency) IntervalSnapshot() ExpressionStatsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshotOf(r.interval, r.percentile)
}

// DwellSnapshot returns the dwell-time statistics for the given state, and
// whether any samples have been recorded for it yet.
func (r *StateResidency) DwellSnapshot(state uint32) (ExpressionStatsSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mq, ok := r.dwellByStat[state]
	if !ok {
		return ExpressionStatsSnapshot{}, false
	}
	return snapshotOf(mq, r.percentile), true
}

func snapshotOf(mq *MultiQuantile, percentiles []float64) ExpressionStatsSnapshot {
	out := ExpressionStatsSnapshot{
		Count:      mq.Count(),
		Mean:       mq.Mean(),
		Max:        mq.Max(),
		Percentile: make(map[float64]float64, len(percentiles)),
	}
	for i, p := range percentiles {
		out.Percentile[p] = mq.Quantile(i)
	}
	return out
}
