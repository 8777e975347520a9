package search

import (
	"github.com/btcsuite/btclog"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// LogReporter writes reports as plain log lines. It is used for non-interactive
// runs where the coloured console output would only add noise.
type LogReporter struct {
	log btclog.Logger
}

// NewLogReporter creates a reporter writing to logger at info level.
func NewLogReporter(logger btclog.Logger) *LogReporter {
	return &LogReporter{log: logger}
}

// Estimate logs the expected number of candidates.
func (r *LogReporter) Estimate(cfg *generator.Config, required uint64) {
	r.log.Infof("Searching for prefix=%q suffix=%q at %s", cfg.Prefix, cfg.Suffix, cfg.DerivationPath)
	r.log.Infof("You may need to go through %d wallets (ignoring checksums) before you find your combination", required)
	r.log.Infof("Performing speed benchmark using %d wallets...", BatchSize)
}

// Benchmark logs the measured throughput and the first estimate.
func (r *LogReporter) Benchmark(b Benchmark) {
	r.log.Infof("Completed speed benchmark in %v: %.2f wallets/sec, at most %.2f minutes left",
		b.Elapsed, b.WalletsPerSecond, b.RemainingMinutes)
}

// Progress logs the iteration count and remaining time.
func (r *LogReporter) Progress(p Progress) {
	r.log.Infof("Searched %d wallets so far, at most %.2f minutes left", p.Iterations, p.RemainingMinutes)
}

// Match logs the address and mnemonic in a single entry.
func (r *LogReporter) Match(res generator.Result) {
	r.log.Infof("Generated %d wallets to find a match: address=%s path=%s mnemonic=%q",
		res.Iterations, res.Address, res.Path, res.Mnemonic)
}

// MultiReporter fans every report out to all of its reporters in order.
type MultiReporter []Reporter

// Estimate implements Reporter.
func (m MultiReporter) Estimate(cfg *generator.Config, required uint64) {
	for _, r := range m {
		r.Estimate(cfg, required)
	}
}

// Benchmark implements Reporter.
func (m MultiReporter) Benchmark(b Benchmark) {
	for _, r := range m {
		r.Benchmark(b)
	}
}

// Progress implements Reporter.
func (m MultiReporter) Progress(p Progress) {
	for _, r := range m {
		r.Progress(p)
	}
}

// Match implements Reporter.
func (m MultiReporter) Match(res generator.Result) {
	for _, r := range m {
		r.Match(res)
	}
}
