package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/flodolo/gecko-it-qa/internal/checker"
	"github.com/flodolo/gecko-it-qa/internal/config"
	"github.com/flodolo/gecko-it-qa/internal/spell"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "gecko-it-qa [repository-path]",
		Short: "Quality checks for Italian Gecko localization strings",
		Long: `Checks localized strings for straight quotes where typographic quotes are
required, and for spelling errors, accounting for placeholders, markup, and
per-string exceptions. Exits 1 if any error was found.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, verbose, true, true)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output (original text, normalized text, tokens)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "spelling [repository-path]",
		Short: "Run only the spelling check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, verbose, true, false)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "quotes [repository-path]",
		Short: "Run only the quote check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, verbose, false, true)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Check failed")
		os.Exit(1)
	}
}

func run(args []string, verbose, withSpelling, withQuotes bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if len(args) == 1 {
		cfg.RepoPath = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	affPath, dicPath := cfg.DictionaryPaths()
	hunspell, err := spell.NewHunspell(affPath, dicPath)
	if err != nil {
		return fmt.Errorf("set up spellchecker: %w", err)
	}
	oracle := spell.NewCached(hunspell)

	c := checker.New(cfg, oracle, verbose)

	entries, err := c.ExtractStrings(ctx)
	if err != nil {
		return err
	}

	foundErrors := false

	if withQuotes {
		quoteErrors, err := c.CheckQuotes(entries)
		if err != nil {
			return err
		}
		foundErrors = foundErrors || len(quoteErrors) > 0
	}

	if withSpelling {
		misspellings, err := c.CheckSpelling(ctx, entries)
		if err != nil {
			return err
		}
		foundErrors = foundErrors || misspellings.HasErrors()
	}

	if foundErrors {
		printErrorFiles(cfg.ErrorsDir, withQuotes, withSpelling)
		os.Exit(1)
	}

	fmt.Println("No errors found.")
	return nil
}

// printErrorFiles echoes the freshly written error reports to stdout.
func printErrorFiles(errorsDir string, withQuotes, withSpelling bool) {
	checks := []struct {
		name    string
		enabled bool
	}{
		{"quotes", withQuotes},
		{"spelling", withSpelling},
	}
	for _, check := range checks {
		if !check.enabled {
			continue
		}
		data, err := os.ReadFile(filepath.Join(errorsDir, check.name+".json"))
		if err != nil {
			log.Warn().Err(err).Str("check", check.name).Msg("Cannot read error file")
			continue
		}

		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			log.Warn().Err(err).Str("check", check.name).Msg("Cannot parse error file")
			continue
		}
		if isEmptyPayload(payload) {
			continue
		}

		pretty, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			continue
		}
		fmt.Printf("Errors for %s:\n%s\n", check.name, pretty)
	}
}

func isEmptyPayload(payload any) bool {
	switch v := payload.(type) {
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return payload == nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
