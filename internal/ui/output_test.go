package ui

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResultFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.txt")
	f := NewResultFile(path)
	f.now = func() time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	require.Equal(t, path, f.Path())

	// Non-match reports never touch the file
	f.Estimate(nil, 16)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	first := testResult()
	second := testResult()
	second.Address = "0x00000000000000000000000000000000DeaDBeef"
	second.Iterations = 99

	f.Match(first)
	f.Match(second)
	require.NoError(t, f.Err())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	require.Equal(t, 2, strings.Count(text, "Seed Phrase: "+testMnemonic))
	require.Contains(t, text, "Address:     "+testAddress)
	require.Contains(t, text, "Address:     0x00000000000000000000000000000000DeaDBeef")
	require.Contains(t, text, "Path:        m/44'/60'/0'/0/0")
	require.Contains(t, text, "Attempts: 1,234")
	require.Contains(t, text, "Generated: 2024-03-01 12:00:00")
	require.Less(t, strings.Index(text, testAddress), strings.Index(text, "DeaDBeef"))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestResultFileKeepsFirstError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "wallet.txt")
	f := NewResultFile(path)

	f.Match(testResult())
	first := f.Err()
	require.Error(t, first)
	require.Contains(t, first.Error(), "open result file")

	f.Match(testResult())
	require.Equal(t, first, f.Err())
}
