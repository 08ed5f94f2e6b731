package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var explainCmd = &cobra.Command{
	Use:   "explain <phrase...>",
	Short: "Show the tokens, parsed parts and result for a phrase",
	Long: `Run a phrase through every stage and print what each produced as YAML.
Stages after the first failure are omitted and the failing stage is named.

Examples:
  fuzzydate explain five days after this friday
  fuzzydate explain -r 2025-11-27T08:00:00Z "tomorrow at"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		phrase := strings.Join(args, " ")
		trace := s.parser.Explain(phrase, s.anchor, s.inLoc)

		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)

		if err := encoder.Encode(trace); err != nil {
			return fmt.Errorf("failed to encode trace: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return err
		}

		if trace.Err != nil {
			return &phraseError{phrase: phrase, err: trace.Err}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
