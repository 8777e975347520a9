package search

import (
	"math"
	"time"
)

// BatchSize is the number of candidates per benchmark/progress batch.
const BatchSize = 1000

// State is the mutable bookkeeping of one search run. It is owned by the loop
// and passed explicitly to the Estimator; nothing else mutates it.
type State struct {
	Iterations uint64    // Candidates generated so far
	Start      time.Time // When the loop started
	Required   uint64    // Rough expected number of candidates, see RequiredIterations

	Benchmarked        bool          // Set once at iteration BatchSize
	BenchmarkElapsed   time.Duration // Time taken by the first batch
	SecondsPerThousand float64       // Current throughput baseline
	RemainingMinutes   float64       // Last reported remaining-time estimate
	LastBatchAt        time.Time     // When the previous batch completed
}

// NewState creates the state for a run starting at start.
func NewState(start time.Time, required uint64) *State {
	return &State{
		Start:       start,
		Required:    required,
		LastBatchAt: start,
	}
}

// Remaining returns the current remaining-time estimate in minutes. The
// second value is false until the benchmark has run.
func (s *State) Remaining() (float64, bool) {
	if !s.Benchmarked {
		return 0, false
	}
	return s.RemainingMinutes, true
}

// WalletsPerSecond returns the throughput implied by the current baseline.
func (s *State) WalletsPerSecond() float64 {
	if s.SecondsPerThousand <= 0 {
		return 0
	}
	return BatchSize / s.SecondsPerThousand
}

// RequiredIterations estimates how many candidates are needed to hit a
// pattern of the given lengths: 16^(prefixLen+suffixLen). This is the mean of
// the geometric distribution for a case-insensitive match and ignores overlap
// between prefix and suffix. Results that do not fit in a uint64 saturate.
func RequiredIterations(prefixLen, suffixLen int) uint64 {
	totalChars := prefixLen + suffixLen
	if totalChars <= 0 {
		return 1
	}
	if totalChars >= 16 {
		return math.MaxUint64
	}
	return 1 << (4 * uint(totalChars))
}

// Benchmark is reported once, after the first BatchSize candidates.
type Benchmark struct {
	Elapsed            time.Duration
	SecondsPerThousand float64
	WalletsPerSecond   float64
	RemainingMinutes   float64
}

// Progress is reported after every BatchSize candidates.
type Progress struct {
	Iterations       uint64
	Elapsed          time.Duration
	WalletsPerSecond float64
	RemainingMinutes float64
}

// Estimator turns iteration counts into benchmark and progress reports.
//
// By default the throughput measured over the first batch is kept for the
// whole run and the remaining time decays linearly by one batch worth of time
// per batch. With Recalibrate set, every later batch re-measures throughput
// over the last window and re-projects from the remaining iterations.
type Estimator struct {
	Recalibrate bool
}

// Observe updates st after an iteration completed at now. It returns a
// non-nil Benchmark exactly once, at iteration BatchSize, and a non-nil
// Progress at every multiple of BatchSize. Both are nil otherwise.
func (e *Estimator) Observe(st *State, now time.Time) (*Benchmark, *Progress) {
	if st.Iterations == 0 || st.Iterations%BatchSize != 0 {
		return nil, nil
	}

	var bench *Benchmark
	switch {
	case !st.Benchmarked:
		if st.Iterations != BatchSize {
			// Benchmark only ever runs at exactly BatchSize
			st.LastBatchAt = now
			return nil, nil
		}
		elapsed := now.Sub(st.Start)
		st.Benchmarked = true
		st.BenchmarkElapsed = elapsed
		st.SecondsPerThousand = elapsed.Seconds()
		st.RemainingMinutes = st.SecondsPerThousand * float64(st.Required) / BatchSize / 60

		bench = &Benchmark{
			Elapsed:            elapsed,
			SecondsPerThousand: st.SecondsPerThousand,
			WalletsPerSecond:   st.WalletsPerSecond(),
			RemainingMinutes:   st.RemainingMinutes,
		}
		st.decay()

	case e.Recalibrate:
		st.SecondsPerThousand = now.Sub(st.LastBatchAt).Seconds()
		left := float64(st.Required) - float64(st.Iterations)
		if left < 0 {
			left = 0
		}
		st.RemainingMinutes = st.SecondsPerThousand * left / BatchSize / 60

	default:
		st.decay()
	}
	st.LastBatchAt = now

	return bench, &Progress{
		Iterations:       st.Iterations,
		Elapsed:          now.Sub(st.Start),
		WalletsPerSecond: st.WalletsPerSecond(),
		RemainingMinutes: st.RemainingMinutes,
	}
}

// decay subtracts one batch worth of time from the estimate, floored at zero.
func (s *State) decay() {
	s.RemainingMinutes -= s.SecondsPerThousand / 60
	if s.RemainingMinutes < 0 {
		s.RemainingMinutes = 0
	}
}
