package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fuzzydate/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configDir      string
	debugMode      bool
	outputFormat   string
	relativeTo     string
	inputTimezone  string
	outputTimezone string
	weekStart      string
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "fuzzydate [phrase...]",
	Short: "Turn informal date phrases into timestamps",
	Long: `fuzzydate converts phrases like "five days after this friday",
"tomorrow at noon" or "3 weeks ago" into a single timestamp.

The words of the phrase are joined with spaces; with no phrase it prints
today. With no arguments and piped input it resolves one phrase per line,
like the batch command.

Commands:
  batch        Resolve many phrases from a file or stdin
  explain      Show tokens, parts and result for a phrase
  compare      Compare the result with go-naturaldate
  interactive  Prompt for phrases in a loop
  config       Manage configuration files`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if configDir != "" {
			config.SetCustomConfigDir(configDir)
		}
	},
	RunE: runRootCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Custom configuration directory")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Go time layout for results (default RFC3339)")
	rootCmd.PersistentFlags().StringVarP(&relativeTo, "relative-to", "r", "", "Anchor instant (RFC3339, ISO 8601 or a phrase) instead of now")
	rootCmd.PersistentFlags().StringVar(&inputTimezone, "input-timezone", "", "IANA zone phrases are read in (default local)")
	rootCmd.PersistentFlags().StringVar(&outputTimezone, "output-timezone", "", "IANA zone results are printed in (default: result's own zone)")
	rootCmd.PersistentFlags().StringVar(&weekStart, "week-start", "", "First day of the week for this/next/last weekday references")
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !stdinIsTerminal() {
		slog.Debug("no phrase given and stdin is not a terminal, reading phrases from stdin")

		return runBatch(cmd, os.Stdin)
	}

	phrase := strings.Join(args, " ")
	if phrase == "" {
		phrase = "today"
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	t, err := s.parser.Parse(phrase)
	if err != nil {
		return &phraseError{phrase: phrase, err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.format(t))

	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var pe *phraseError
		if errors.As(err, &pe) {
			renderPhraseError(os.Stderr, pe)
		} else {
			fmt.Fprintln(os.Stderr, Error("error: "+err.Error()))
		}

		os.Exit(1)
	}
}
