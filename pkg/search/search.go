// Package search runs the sequential seed-phrase vanity search: generate a
// candidate, match it, feed the estimator, report, repeat.
package search

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/clock"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
)

// Source produces one candidate per call. *ethereum.Generator is the
// production implementation; tests substitute fixed sequences.
type Source interface {
	Next() (generator.Candidate, error)
}

// Reporter receives everything the user should see about a run. Match is
// always called with the mnemonic and the address together.
type Reporter interface {
	// Estimate is called once before the first candidate.
	Estimate(cfg *generator.Config, required uint64)

	// Benchmark is called once, after the first BatchSize candidates.
	Benchmark(b Benchmark)

	// Progress is called after every BatchSize candidates.
	Progress(p Progress)

	// Match is called for every matching candidate.
	Match(r generator.Result)
}

// Summary describes a finished (or interrupted) run.
type Summary struct {
	Iterations uint64
	Elapsed    time.Duration
	Matches    []generator.Result
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Searcher) {
		s.clock = c
	}
}

// Searcher owns a single search run.
type Searcher struct {
	config    *generator.Config
	source    Source
	reporter  Reporter
	clock     clock.Clock
	estimator *Estimator
}

// New creates a Searcher. The configuration is validated by Run, not here.
func New(cfg *generator.Config, source Source, reporter Reporter, opts ...Option) *Searcher {
	s := &Searcher{
		config:    cfg,
		source:    source,
		reporter:  reporter,
		clock:     clock.NewDefaultClock(),
		estimator: &Estimator{Recalibrate: cfg.Recalibrate},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates the configuration and then searches until one of:
//   - a match is found and StopOnFirstMatch is set
//   - MaxAttempts candidates have been generated (when non-zero)
//   - ctx is cancelled, in which case ctx.Err() is returned
//   - the source or matcher fails, in which case that error is returned
//
// The returned Summary is non-nil whenever the loop was entered.
func (s *Searcher) Run(ctx context.Context) (*Summary, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	matcher := ethereum.NewMatcher(s.config.Prefix, s.config.Suffix)
	state := NewState(s.clock.Now(), RequiredIterations(len(s.config.Prefix), len(s.config.Suffix)))
	summary := &Summary{}

	s.reporter.Estimate(s.config, state.Required)
	log.Debugf("Search started: prefix=%q suffix=%q path=%s required=%d",
		s.config.Prefix, s.config.Suffix, s.config.DerivationPath, state.Required)

	var runErr error
	searchDone := false
	for !searchDone {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if s.config.MaxAttempts > 0 && state.Iterations >= s.config.MaxAttempts {
			log.Debugf("Reached max attempts (%d)", s.config.MaxAttempts)
			break
		}

		candidate, err := s.source.Next()
		if err != nil {
			runErr = err
			break
		}
		state.Iterations++

		now := s.clock.Now()
		bench, progress := s.estimator.Observe(state, now)
		if bench != nil {
			s.reporter.Benchmark(*bench)
		}
		if progress != nil {
			s.reporter.Progress(*progress)
		}

		matched, err := matcher.Matches(candidate.Address)
		if err != nil {
			runErr = err
			break
		}
		if !matched {
			continue
		}

		result := generator.Result{
			Candidate:  candidate,
			Iterations: state.Iterations,
			Elapsed:    now.Sub(state.Start),
		}
		summary.Matches = append(summary.Matches, result)
		s.reporter.Match(result)
		log.Debugf("Match #%d at iteration %d", len(summary.Matches), state.Iterations)

		searchDone = s.config.StopOnFirstMatch
	}

	summary.Iterations = state.Iterations
	summary.Elapsed = s.clock.Now().Sub(state.Start)
	return summary, runErr
}
