package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <phrase...>",
	Short: "Compare the result for a phrase with go-naturaldate",
	Long: `Resolve a phrase with fuzzydate and with github.com/tj/go-naturaldate
against the same anchor and print both, marking whether they agree.

Examples:
  fuzzydate compare 3 days ago
  fuzzydate compare -r 2025-11-27T08:00:00Z next friday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		return runCompare(cmd.OutOrStdout(), s, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(w io.Writer, s *settings, phrase string) error {
	ours, oursErr := s.parser.AwareParse(phrase, s.anchor, s.inLoc)
	theirs, theirsErr := parseNaturalDate(phrase, s.anchor)

	fmt.Fprintf(w, "%s %s\n", Silent("anchor:       "), s.format(s.anchor))
	fmt.Fprintf(w, "%s %s\n", Silent("fuzzydate:    "), describe(s, ours, oursErr))
	fmt.Fprintf(w, "%s %s\n", Silent("naturaldate:  "), describe(s, theirs, theirsErr))

	switch {
	case oursErr != nil && theirsErr != nil:
		fmt.Fprintln(w, Error("neither parser understood the phrase"))
	case oursErr == nil && theirsErr == nil && ours.Equal(theirs):
		fmt.Fprintln(w, Info("results agree"))
	default:
		fmt.Fprintln(w, Primary("results differ"))
	}

	return nil
}

func describe(s *settings, t time.Time, err error) string {
	if err != nil {
		return Error(err.Error())
	}

	return s.format(t)
}
