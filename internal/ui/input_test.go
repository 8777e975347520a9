package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
		wantSuffix string
		wantOutput string
	}{
		{
			name:       "both",
			input:      "0xDEAD\nBeef\n",
			wantPrefix: "dead",
			wantSuffix: "beef",
		},
		{
			name:       "prefix only with CRLF",
			input:      "c0ffee\r\n\r\n",
			wantPrefix: "c0ffee",
		},
		{
			name:       "invalid then valid",
			input:      "xyz\nab\n\n",
			wantPrefix: "ab",
			wantOutput: "Invalid character(s): xyz",
		},
		{
			name:       "too long",
			input:      strings.Repeat("a", 41) + "\n\n12\n",
			wantSuffix: "12",
			wantOutput: "Too long",
		},
		{
			name:       "nothing then suffix",
			input:      "\n\n\ncafe\n",
			wantSuffix: "cafe",
			wantOutput: "Must specify prefix or suffix",
		},
		{
			name:       "last line without newline",
			input:      "\nf00d",
			wantSuffix: "f00d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			prefix, suffix, err := p.Patterns()
			require.NoError(t, err)
			require.Equal(t, tt.wantPrefix, prefix)
			require.Equal(t, tt.wantSuffix, suffix)
			if tt.wantOutput != "" {
				require.Contains(t, out.String(), tt.wantOutput)
			}
		})
	}
}

func TestPatternsEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, _, err := p.Patterns()
	require.ErrorIs(t, err, io.EOF)

	p, _ = newTestPrompter("zz\n")
	_, _, err = p.Patterns()
	require.ErrorIs(t, err, io.EOF)
}

func TestAskStopOnFirstMatch(t *testing.T) {
	tests := map[string]bool{
		"\n":          true,
		"y\n":         true,
		"c\n":         false,
		" Continue\n": false,
		"":            true,
	}
	for input, want := range tests {
		p, _ := newTestPrompter(input)
		stop, err := p.AskStopOnFirstMatch()
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, stop, "input %q", input)
	}
}

func TestPassphrase(t *testing.T) {
	p, _ := newTestPrompter("\n")
	pass, err := p.Passphrase()
	require.NoError(t, err)
	require.Empty(t, pass)

	p, out := newTestPrompter("correct horse\ncorrect horse\n")
	pass, err = p.Passphrase()
	require.NoError(t, err)
	require.Equal(t, "correct horse", pass)
	require.Contains(t, out.String(), "Repeat passphrase")

	p, _ = newTestPrompter("one\ntwo\n")
	_, err = p.Passphrase()
	require.ErrorIs(t, err, ErrPassphraseMismatch)

	p, _ = newTestPrompter("")
	_, err = p.Passphrase()
	require.ErrorIs(t, err, io.EOF)
}
