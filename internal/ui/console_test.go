package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/search"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testAddress  = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

func testResult() generator.Result {
	return generator.Result{
		Candidate: generator.Candidate{
			Mnemonic: testMnemonic,
			Address:  testAddress,
			Path:     generator.DefaultDerivationPath,
		},
		Iterations: 1234,
		Elapsed:    90 * time.Second,
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[uint64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		65536:   "65,536",
		1234567: "1,234,567",
	}
	for n, want := range tests {
		require.Equal(t, want, FormatNumber(n))
	}
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "500ms", FormatDuration(500*time.Millisecond))
	require.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	require.Equal(t, "1m 30s", FormatDuration(90*time.Second))
	require.Equal(t, "2h 5m", FormatDuration(2*time.Hour+5*time.Minute))
}

func TestFormatHashRate(t *testing.T) {
	require.Equal(t, "200/s", FormatHashRate(200))
	require.Equal(t, "1.5K/s", FormatHashRate(1500))
	require.Equal(t, "2.5M/s", FormatHashRate(2500000))
}

func TestFormatMinutes(t *testing.T) {
	require.Equal(t, "0ms", FormatMinutes(0))
	require.Equal(t, "0ms", FormatMinutes(-3))
	require.Equal(t, "30.0s", FormatMinutes(0.5))
	require.Equal(t, "5m 30s", FormatMinutes(5.5))
	require.Equal(t, "2.0 years", FormatMinutes(2*minutesPerYear))
}

func TestProgressBar(t *testing.T) {
	count := func(bar string) int {
		return strings.Count(bar, "▓")
	}

	require.Equal(t, 0, count(ProgressBar(0, 16)))
	require.Equal(t, barWidth, strings.Count(ProgressBar(0, 16), "░"))

	// One expected difficulty worth of attempts fills three quarters
	require.Equal(t, 30, count(ProgressBar(16, 16)))
	require.Equal(t, barWidth, count(ProgressBar(1<<40, 16)))
	require.Equal(t, barWidth, count(ProgressBar(100, 0)))
}

func TestConsoleReports(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "")

	c.Estimate(&generator.Config{
		Prefix:         "dead",
		Suffix:         "beef",
		DerivationPath: generator.DefaultDerivationPath,
	}, 1<<32)
	out := buf.String()
	require.Contains(t, out, "0xdead")
	require.Contains(t, out, "beef")
	require.Contains(t, out, "4,294,967,296")
	require.Contains(t, out, generator.DefaultDerivationPath)

	buf.Reset()
	c.Progress(search.Progress{Iterations: 500})
	require.NotContains(t, buf.String(), "left")

	buf.Reset()
	c.Benchmark(search.Benchmark{
		Elapsed:          5 * time.Second,
		WalletsPerSecond: 200,
		RemainingMinutes: 5.5,
	})
	require.Contains(t, buf.String(), "200/s")
	require.Contains(t, buf.String(), "5m 30s")

	buf.Reset()
	c.Progress(search.Progress{Iterations: 2000, WalletsPerSecond: 200, RemainingMinutes: 5.5})
	require.Contains(t, buf.String(), "2,000")
	require.Contains(t, buf.String(), "~5m 30s left")
}

func TestConsoleMatch(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, "wallet.txt").Match(testResult())

	out := buf.String()
	addrIdx := strings.Index(out, testAddress)
	mnemonicIdx := strings.Index(out, testMnemonic)
	require.Positive(t, addrIdx)
	require.Greater(t, mnemonicIdx, addrIdx)
	require.Contains(t, out, generator.DefaultDerivationPath)
	require.Contains(t, out, "1,234")
	require.Contains(t, out, "wallet.txt")

	buf.Reset()
	NewConsole(&buf, "").Match(testResult())
	require.NotContains(t, buf.String(), "💾")
}

func TestPrintSummaries(t *testing.T) {
	var buf bytes.Buffer
	PrintCancelled(&buf, 12345, 2*time.Second)
	require.Contains(t, buf.String(), "Cancelled")
	require.Contains(t, buf.String(), "12,345 attempts")

	buf.Reset()
	PrintFinished(&buf, &search.Summary{
		Iterations: 5000,
		Elapsed:    time.Minute,
		Matches:    []generator.Result{testResult(), testResult()},
	})
	require.Contains(t, buf.String(), "5,000 attempts")
	require.Contains(t, buf.String(), "2 match(es)")
}
