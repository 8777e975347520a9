package search

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestRequiredIterations(t *testing.T) {
	tests := []struct {
		prefixLen int
		suffixLen int
		want      uint64
	}{
		{0, 0, 1},
		{1, 0, 16},
		{0, 1, 16},
		{4, 0, 65536},
		{2, 2, 65536},
		{0, 4, 65536},
		{3, 5, 1 << 32},
		{15, 0, 1 << 60},
		{16, 0, math.MaxUint64},
		{20, 20, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, RequiredIterations(tt.prefixLen, tt.suffixLen),
			"prefix=%d suffix=%d", tt.prefixLen, tt.suffixLen)
	}
}

// runEstimator feeds n iterations into e, each taking step.
func runEstimator(e *Estimator, st *State, n int, step time.Duration,
	now time.Time) ([]uint64, []Benchmark, []Progress, time.Time) {

	var (
		benchAt  []uint64
		benches  []Benchmark
		progress []Progress
	)
	for i := 0; i < n; i++ {
		now = now.Add(step)
		st.Iterations++

		b, p := e.Observe(st, now)
		if b != nil {
			benchAt = append(benchAt, st.Iterations)
			benches = append(benches, *b)
		}
		if p != nil {
			progress = append(progress, *p)
		}
	}
	return benchAt, benches, progress, now
}

func TestEstimatorBenchmarkOnce(t *testing.T) {
	st := NewState(testStart, RequiredIterations(4, 0))
	e := &Estimator{}

	benchAt, benches, progress, _ := runEstimator(e, st, 5500, 5*time.Millisecond, testStart)

	require.Equal(t, []uint64{BatchSize}, benchAt)
	require.Len(t, progress, 5)
	for i, p := range progress {
		require.Equal(t, uint64((i+1)*BatchSize), p.Iterations)
	}

	// 1000 wallets in 5s
	b := benches[0]
	require.Equal(t, 5*time.Second, b.Elapsed)
	require.InDelta(t, 5.0, b.SecondsPerThousand, 1e-9)
	require.InDelta(t, 200.0, b.WalletsPerSecond, 1e-9)

	initial := 5.0 * 65536 / 1000 / 60
	require.InDelta(t, initial, b.RemainingMinutes, 1e-9)

	// Linear decay of 5s per batch, starting with the batch that benchmarked
	for i, p := range progress {
		want := initial - float64(i+1)*5.0/60
		require.InDelta(t, want, p.RemainingMinutes, 1e-9, "batch %d", i+1)
		require.InDelta(t, 200.0, p.WalletsPerSecond, 1e-9)
	}
}

func TestEstimatorNoReportBetweenBatches(t *testing.T) {
	st := NewState(testStart, 16)
	e := &Estimator{}

	for i := 1; i < BatchSize; i++ {
		st.Iterations = uint64(i)
		b, p := e.Observe(st, testStart.Add(time.Second))
		require.Nil(t, b)
		require.Nil(t, p)
	}
	_, ok := st.Remaining()
	require.False(t, ok)
}

func TestEstimatorInjectedState(t *testing.T) {
	// A state that skipped iteration 1000 never gets a benchmark
	st := NewState(testStart, 65536)
	st.Iterations = 2 * BatchSize
	b, p := (&Estimator{}).Observe(st, testStart.Add(time.Minute))
	require.Nil(t, b)
	require.Nil(t, p)
	require.False(t, st.Benchmarked)

	// An already benchmarked state only decays
	st = &State{
		Iterations:         3 * BatchSize,
		Start:              testStart,
		Required:           65536,
		Benchmarked:        true,
		SecondsPerThousand: 6,
		RemainingMinutes:   1,
	}
	b, p = (&Estimator{}).Observe(st, testStart.Add(time.Minute))
	require.Nil(t, b)
	require.NotNil(t, p)
	require.InDelta(t, 0.9, p.RemainingMinutes, 1e-9)
}

func TestEstimatorFloorsAtZero(t *testing.T) {
	st := NewState(testStart, 1)
	e := &Estimator{}

	_, benches, progress, _ := runEstimator(e, st, 3*BatchSize, 10*time.Millisecond, testStart)
	require.Len(t, benches, 1)
	for _, p := range progress {
		require.Zero(t, p.RemainingMinutes)
	}
}

func TestEstimatorZeroElapsed(t *testing.T) {
	st := NewState(testStart, 256)
	e := &Estimator{}

	_, benches, _, _ := runEstimator(e, st, BatchSize, 0, testStart)
	require.Len(t, benches, 1)
	require.Zero(t, benches[0].WalletsPerSecond)
	require.Zero(t, benches[0].RemainingMinutes)
}

func TestEstimatorRecalibrate(t *testing.T) {
	required := RequiredIterations(2, 2)
	st := NewState(testStart, required)
	e := &Estimator{Recalibrate: true}

	// First batch at 5ms per wallet, second at 10ms per wallet
	_, benches, progress, now := runEstimator(e, st, BatchSize, 5*time.Millisecond, testStart)
	require.Len(t, benches, 1)
	require.Len(t, progress, 1)
	require.InDelta(t, 5.0*65536/1000/60-5.0/60, progress[0].RemainingMinutes, 1e-9)

	_, benches, progress, _ = runEstimator(e, st, BatchSize, 10*time.Millisecond, now)
	require.Empty(t, benches)
	require.Len(t, progress, 1)

	require.InDelta(t, 10.0, st.SecondsPerThousand, 1e-9)
	require.InDelta(t, 100.0, progress[0].WalletsPerSecond, 1e-9)
	require.InDelta(t, 10.0*(65536-2000)/1000/60, progress[0].RemainingMinutes, 1e-9)
}
