package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/search"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

const barWidth = 40

// ClearScreen clears the terminal
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// ClearLine clears the current line
func ClearLine(w io.Writer) {
	fmt.Fprint(w, "\r"+strings.Repeat(" ", 94)+"\r")
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s", ColorCyan, ColorBold)
	fmt.Fprintln(w, "  ╔══════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "  ║   ███████╗███████╗███████╗██████╗ ██╗  ██╗██╗   ██╗███╗   ██╗    ║")
	fmt.Fprintln(w, "  ║   ██╔════╝██╔════╝██╔════╝██╔══██╗██║  ██║██║   ██║████╗  ██║    ║")
	fmt.Fprintln(w, "  ║   ███████╗█████╗  █████╗  ██║  ██║███████║██║   ██║██╔██╗ ██║    ║")
	fmt.Fprintln(w, "  ║   ╚════██║██╔══╝  ██╔══╝  ██║  ██║██╔══██║██║   ██║██║╚██╗██║    ║")
	fmt.Fprintln(w, "  ║   ███████║███████╗███████╗██████╔╝██║  ██║╚██████╔╝██║ ╚████║    ║")
	fmt.Fprintln(w, "  ║   ╚══════╝╚══════╝╚══════╝╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝    ║")
	fmt.Fprintln(w, "  ╠══════════════════════════════════════════════════════════════════╣")
	fmt.Fprintf(w, "  ║%s     Seed Phrase Vanity Address Search %s• v%s%s\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Fprintln(w, "  ╚══════════════════════════════════════════════════════════════════╝")
	fmt.Fprint(w, ColorReset)
	fmt.Fprintln(w)
}

// PrintCancelled shows the summary of an interrupted search
func PrintCancelled(w io.Writer, attempts uint64, elapsed time.Duration) {
	ClearLine(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s⚠ Cancelled%s │ %s attempts │ %s\n",
		ColorYellow+ColorBold, ColorReset,
		FormatNumber(attempts),
		FormatDuration(elapsed))
}

// PrintFinished shows the summary of a search that ran out of attempts
// or continued past its matches.
func PrintFinished(w io.Writer, summary *search.Summary) {
	ClearLine(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s✓ Done%s │ %s attempts │ %d match(es) │ %s\n",
		ColorGreen+ColorBold, ColorReset,
		FormatNumber(summary.Iterations),
		len(summary.Matches),
		FormatDuration(summary.Elapsed))
}

// Console is the default reporter. It draws a single self-overwriting
// progress line and prints every match as a framed block.
type Console struct {
	out        io.Writer
	outputFile string

	required  uint64
	frame     int
	estimated bool
}

// NewConsole creates a console reporter writing to w. When outputFile is not
// empty it is shown next to every match.
func NewConsole(w io.Writer, outputFile string) *Console {
	return &Console{out: w, outputFile: outputFile}
}

// Estimate prints the search target and difficulty.
func (c *Console) Estimate(cfg *generator.Config, required uint64) {
	c.required = required

	fmt.Fprintf(c.out, "\n    %s🚀 SEARCHING%s", ColorGreen+ColorBold, ColorReset)
	if cfg.Prefix != "" {
		fmt.Fprintf(c.out, " %s%s0x%s%s...%s", ColorBold, ColorCyan, cfg.Prefix, ColorDim, ColorReset)
	}
	if cfg.Suffix != "" {
		fmt.Fprintf(c.out, "%s...%s%s%s%s", ColorDim, ColorCyan, ColorBold, cfg.Suffix, ColorReset)
	}
	fmt.Fprintf(c.out, " %s(1/%s)%s\n", ColorDim, FormatNumber(required), ColorReset)
	fmt.Fprintf(c.out, "    %s🧭 %s%s\n", ColorDim, cfg.DerivationPath, ColorReset)
	fmt.Fprintf(c.out, "    %sYou may need to go through %s wallets (ignoring checksums).%s\n",
		ColorDim, FormatNumber(required), ColorReset)
	fmt.Fprintf(c.out, "    %sPerforming speed benchmark using %d wallets...%s\n\n",
		ColorDim, search.BatchSize, ColorReset)
}

// Benchmark prints the measured throughput and the first estimate.
func (c *Console) Benchmark(b search.Benchmark) {
	c.estimated = true

	ClearLine(c.out)
	fmt.Fprintf(c.out, "    %s⚡ BENCHMARK%s %s │ %s%s%s │ ~%s left\n\n",
		ColorPurple+ColorBold, ColorReset,
		FormatDuration(b.Elapsed),
		ColorGreen+ColorBold, FormatHashRate(b.WalletsPerSecond), ColorReset,
		FormatMinutes(b.RemainingMinutes))
}

// Progress redraws the progress line.
func (c *Console) Progress(p search.Progress) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[c.frame%len(spinners)]
	c.frame++

	remaining := ""
	if c.estimated {
		remaining = " │ ~" + FormatMinutes(p.RemainingMinutes) + " left"
	}

	fmt.Fprintf(c.out, "\r    %s%s%s %s%s%s %s%s%s │ %s%s%s │ %s%s",
		ColorCyan, spinner, ColorReset,
		ColorDim, ProgressBar(p.Iterations, c.required), ColorReset,
		ColorGreen+ColorBold, FormatHashRate(p.WalletsPerSecond), ColorReset,
		ColorYellow, FormatNumber(p.Iterations), ColorReset,
		FormatDuration(p.Elapsed), remaining)
}

// Match prints the found wallet. The mnemonic is printed right below the
// address.
func (c *Console) Match(res generator.Result) {
	ClearLine(c.out)
	fmt.Fprintf(c.out, "\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(c.out, "    %s%s║               ✨ WALLET FOUND! ✨                        ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(c.out, "    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Fprintf(c.out, "    %s⟠ ETHEREUM ADDRESS%s %s(%s)%s\n\n", ColorCyan+ColorBold, ColorReset, ColorDim, res.Path, ColorReset)
	fmt.Fprintf(c.out, "       %s%s%s%s\n\n", ColorGreen, ColorBold, res.Address, ColorReset)

	fmt.Fprintf(c.out, "    %s🔑 SEED PHRASE%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Fprintf(c.out, "       %s%s%s\n\n", ColorYellow, res.Mnemonic, ColorReset)

	fmt.Fprintf(c.out, "    %s⏱   %s%s   %s│   %s📊  %s%s",
		ColorCyan, ColorReset+ColorBold, FormatDuration(res.Elapsed),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(res.Iterations))
	if c.outputFile != "" {
		fmt.Fprintf(c.out, "   %s│   %s💾  %s%s", ColorDim, ColorYellow, ColorReset+ColorBold, c.outputFile)
	}
	fmt.Fprintf(c.out, "%s\n\n", ColorReset)
	fmt.Fprintf(c.out, "    %s%s⚠  KEEP YOUR SEED PHRASE SECRET!%s\n\n", ColorRed, ColorBold, ColorReset)
}

// ProgressBar renders the chance of having found a match after attempts out
// of an expected difficulty, using 1-0.5^(2*attempts/difficulty).
func ProgressBar(attempts, difficulty uint64) string {
	diff := float64(difficulty)
	if diff == 0 {
		diff = 1
	}

	ratio := float64(attempts) / diff
	progress := 1.0 - math.Pow(0.5, 2.0*ratio)

	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

const minutesPerYear = 60 * 24 * 365

// FormatMinutes formats a remaining-time estimate given in minutes.
// Estimates beyond a year are shown in years since they overflow
// time.Duration for long patterns.
func FormatMinutes(minutes float64) string {
	switch {
	case minutes <= 0:
		return "0ms"
	case minutes >= minutesPerYear:
		return fmt.Sprintf("%.1f years", minutes/minutesPerYear)
	}
	return FormatDuration(time.Duration(minutes * float64(time.Minute)))
}
