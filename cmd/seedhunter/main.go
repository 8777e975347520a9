package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Amr-9/SeedHunter/internal/config"
	"github.com/Amr-9/SeedHunter/internal/ui"
	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
	"github.com/Amr-9/SeedHunter/pkg/search"
)

const version = "1.0"

func main() {
	rootCmd := newRootCommand(config.NewConfig(), os.Stdin)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI around cfg. Interactive prompts read from in.
func newRootCommand(cfg *config.Config, in *os.File) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seedhunter",
		Short: "Vanity Ethereum addresses backed by a seed phrase",
		Long: `Generates random BIP-39 seed phrases until the Ethereum account at the
chosen derivation path has an address with the requested hex prefix and/or
suffix. Matches are reported as a seed phrase that any wallet can restore.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, cfg, in)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.Prefix, "prefix", "p", "", "Address prefix to match (hex, case-insensitive, 0x optional)")
	flags.StringVarP(&cfg.Suffix, "suffix", "s", "", "Address suffix to match (hex, case-insensitive)")
	flags.StringVar(&cfg.Path, "path", cfg.Path, "BIP-32 derivation path of the matched account")
	flags.BoolVarP(&cfg.Stop, "stop", "f", false, "Stop at the first match")
	flags.IntVar(&cfg.Words, "words", cfg.Words, "Seed phrase length (12, 15, 18, 21 or 24)")
	flags.BoolVar(&cfg.PassphrasePrompt, "passphrase-prompt", false, "Ask for an optional BIP-39 passphrase")
	flags.Uint64Var(&cfg.MaxAttempts, "max-attempts", 0, "Give up after this many seed phrases (0 = unlimited)")
	flags.BoolVar(&cfg.Recalibrate, "recalibrate", false, "Re-measure speed every 1000 wallets")
	flags.BoolVar(&cfg.TwoStep, "two-step", false, "Derive custom paths from a default-path wallet")
	flags.StringVarP(&cfg.Output, "output", "o", "", "Append matches to this file")
	flags.BoolVar(&cfg.Plain, "plain", false, "Plain log output instead of the console UI")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error, critical, off)")

	return rootCmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config, in *os.File) error {
	out := cmd.OutOrStdout()

	if !cfg.Plain {
		ui.ClearScreen(out)
		ui.PrintWelcomeBanner(out, version)
	}

	prompter := ui.NewTerminalPrompter(in, out)
	if !cfg.HasPattern() && ui.IsTerminal(in) {
		prefix, suffix, err := prompter.Patterns()
		if err != nil {
			return err
		}
		cfg.Prefix, cfg.Suffix = prefix, suffix

		if !cmd.Flags().Changed("stop") {
			stop, err := prompter.AskStopOnFirstMatch()
			if err != nil {
				return err
			}
			cfg.Stop = stop
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.PassphrasePrompt {
		passphrase, err := prompter.Passphrase()
		if err != nil {
			return err
		}
		cfg.Passphrase = passphrase
	}

	setupLogging(out, cfg.LogLevel)
	seedLog.Infof("Starting seedhunter v%s, target %s", version, cfg.Description())

	searchCfg := cfg.SearchConfig()
	wallet, err := ethereum.NewHDWallet(searchCfg.WordCount, searchCfg.Passphrase)
	if err != nil {
		return err
	}
	gen, err := ethereum.NewGenerator(wallet, searchCfg.DerivationPath, searchCfg.TwoStepDerivation)
	if err != nil {
		return err
	}

	var reporters search.MultiReporter
	if cfg.Plain {
		reporters = append(reporters, search.NewLogReporter(seedLog))
	} else {
		reporters = append(reporters, ui.NewConsole(out, cfg.Output))
	}

	var resultFile *ui.ResultFile
	if cfg.Output != "" {
		resultFile = ui.NewResultFile(cfg.Output)
		reporters = append(reporters, resultFile)
	}

	raisePriority()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := search.New(searchCfg, gen, reporters).Run(ctx)

	if resultFile != nil && resultFile.Err() != nil {
		seedLog.Errorf("Unable to save matches: %v", resultFile.Err())
		if !cfg.Plain {
			fmt.Fprintf(out, "    %s⚠ Save failed: %v%s\n", ui.ColorYellow, resultFile.Err(), ui.ColorReset)
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		printCancelled(out, cfg.Plain, summary)
		return nil

	case err != nil:
		return err
	}

	printFinished(out, cfg.Plain, summary)
	return nil
}

func printCancelled(out io.Writer, plain bool, summary *search.Summary) {
	if plain {
		seedLog.Infof("Search stopped by user after %d wallets (%v), %d match(es)",
			summary.Iterations, summary.Elapsed, len(summary.Matches))
		return
	}
	ui.PrintCancelled(out, summary.Iterations, summary.Elapsed)
}

func printFinished(out io.Writer, plain bool, summary *search.Summary) {
	if plain {
		if len(summary.Matches) == 0 {
			seedLog.Infof("No match found in %d wallets", summary.Iterations)
			return
		}
		seedLog.Infof("Search finished after %d wallets (%v), %d match(es)",
			summary.Iterations, summary.Elapsed, len(summary.Matches))
		return
	}
	ui.PrintFinished(out, summary)
}
