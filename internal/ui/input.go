package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// ErrPassphraseMismatch is returned when the passphrase confirmation differs.
var ErrPassphraseMismatch = errors.New("passphrases do not match")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Prompter asks the user for search parameters.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// readSecret reads a line without echoing it.
	readSecret func() ([]byte, error)
}

// NewPrompter creates a prompter reading plain lines from r. Secrets are read
// like any other line.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(r),
		out: w,
	}
	p.readSecret = func() ([]byte, error) {
		line, err := p.readLine()
		return []byte(line), err
	}
	return p
}

// NewTerminalPrompter creates a prompter on f that hides secrets when f is a
// terminal.
func NewTerminalPrompter(f *os.File, w io.Writer) *Prompter {
	p := NewPrompter(f, w)
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		p.readSecret = func() ([]byte, error) {
			secret, err := term.ReadPassword(fd)
			fmt.Fprintln(w)
			return secret, err
		}
	}
	return p
}

// Patterns prompts for a prefix and suffix until at least one valid pattern
// is given. Invalid input is explained and asked for again.
func (p *Prompter) Patterns() (string, string, error) {
	fmt.Fprintf(p.out, "    %s🎯 TARGET PATTERN%s\n", ColorPurple+ColorBold, ColorReset)

	for {
		prefix, err := p.pattern("prefix", "Prefix", "(0x...)")
		if err != nil {
			return "", "", err
		}
		suffix, err := p.pattern("suffix", "Suffix", "(...xxx)")
		if err != nil {
			return "", "", err
		}

		if prefix != "" || suffix != "" {
			return prefix, suffix, nil
		}
		fmt.Fprintf(p.out, "\n    %s✗ Must specify prefix or suffix!%s\n", ColorRed, ColorReset)
	}
}

func (p *Prompter) pattern(name, label, hint string) (string, error) {
	for {
		fmt.Fprintf(p.out, "    %s%s%s %s: ", ColorCyan, label, ColorReset, hint)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}

		input = strings.ToLower(strings.TrimSpace(input))
		if name == "prefix" {
			input = strings.TrimPrefix(input, "0x")
		}

		if err := generator.ValidatePattern(name, input); err != nil {
			if invalid := generator.InvalidHexChars(input); len(invalid) > 0 {
				fmt.Fprintf(p.out, "    %s⚠ Invalid character(s): %s (hex only: 0-9, a-f)%s\n",
					ColorRed, string(invalid), ColorReset)
			} else {
				fmt.Fprintf(p.out, "    %s⚠ Too long! At most %d characters%s\n",
					ColorRed, generator.MaxPatternLength, ColorReset)
			}
			continue
		}
		return input, nil
	}
}

// AskStopOnFirstMatch asks whether the search should end at the first match.
// Anything but "c" or "continue" means stop.
func (p *Prompter) AskStopOnFirstMatch() (bool, error) {
	fmt.Fprintf(p.out, "\n    %s[Enter]%s Stop at first match  │  %s[C]%s Keep searching\n",
		ColorGreen, ColorReset, ColorYellow, ColorReset)
	fmt.Fprintf(p.out, "    %s→%s ", ColorCyan, ColorReset)

	input, err := p.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input != "c" && input != "continue", nil
}

// Passphrase asks for an optional BIP-39 passphrase twice. An empty first
// entry skips the confirmation.
func (p *Prompter) Passphrase() (string, error) {
	fmt.Fprintf(p.out, "    %s🔒 Passphrase%s (empty for none): ", ColorCyan, ColorReset)
	first, err := p.readSecret()
	if err != nil {
		return "", err
	}
	if len(first) == 0 {
		return "", nil
	}

	fmt.Fprintf(p.out, "    %s🔒 Repeat passphrase%s: ", ColorCyan, ColorReset)
	second, err := p.readSecret()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", ErrPassphraseMismatch
	}
	return string(first), nil
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned normally; io.EOF is only returned once the
// input is exhausted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
