package main

import (
	"io"

	"github.com/btcsuite/btclog"

	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
	"github.com/Amr-9/SeedHunter/pkg/search"
)

// seedLog is the logger of the command itself.
var seedLog = btclog.Disabled

// setupLogging creates a single backend on w and hands a subsystem logger at
// level to every package that logs. Invalid levels fall back to info.
func setupLogging(w io.Writer, level string) {
	backend := btclog.NewBackend(w)
	lvl, _ := btclog.LevelFromString(level)

	newLogger := func(subsystem string) btclog.Logger {
		logger := backend.Logger(subsystem)
		logger.SetLevel(lvl)
		return logger
	}

	seedLog = newLogger("SEED")
	search.UseLogger(newLogger(search.Subsystem))
	ethereum.UseLogger(newLogger(ethereum.Subsystem))
}
