package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/search"
)

// ResultFile appends every match to a text file readable only by the owner.
// Write failures do not stop the search; the first one is kept for Err.
type ResultFile struct {
	path string
	now  func() time.Time
	err  error
}

// NewResultFile creates a reporter appending to path. The file is created on
// the first match.
func NewResultFile(path string) *ResultFile {
	return &ResultFile{path: path, now: time.Now}
}

// Path returns the file the results are written to.
func (f *ResultFile) Path() string {
	return f.path
}

// Err returns the first write error, if any.
func (f *ResultFile) Err() error {
	return f.err
}

// Estimate implements search.Reporter.
func (f *ResultFile) Estimate(*generator.Config, uint64) {}

// Benchmark implements search.Reporter.
func (f *ResultFile) Benchmark(search.Benchmark) {}

// Progress implements search.Reporter.
func (f *ResultFile) Progress(search.Progress) {}

// Match appends res to the file.
func (f *ResultFile) Match(res generator.Result) {
	if err := f.write(res); err != nil && f.err == nil {
		f.err = err
	}
}

func (f *ResultFile) write(res generator.Result) error {
	_, statErr := os.Stat(f.path)
	created := errors.Is(statErr, fs.ErrNotExist)

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open result file: %w", err)
	}

	content := fmt.Sprintf(`Ethereum Seed Phrase Vanity Address
===================================

Address:     %s
Path:        %s
Seed Phrase: %s

Statistics:
  Time:     %s
  Attempts: %s

Generated: %s

⚠️ WARNING: Keep this seed phrase secret and secure!

`, res.Address, res.Path, res.Mnemonic, FormatDuration(res.Elapsed), FormatNumber(res.Iterations),
		f.now().Format("2006-01-02 15:04:05"))

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return fmt.Errorf("write result file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close result file: %w", err)
	}

	if created {
		hideFile(f.path)
	}
	return nil
}
