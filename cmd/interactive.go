package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// PromptFunc asks for one phrase. validate reports a phrase that does not
// parse; an empty answer ends the session.
type PromptFunc func(validate func(string) error) (string, error)

// newPromptFunc creates a PromptFunc using huh's interactive input component.
func newPromptFunc() PromptFunc {
	return func(validate func(string) error) (string, error) {
		var result string
		err := huh.NewInput().
			Title("Phrase").
			Description("Empty line or ctrl+c to quit").
			Placeholder("next friday at 5pm").
			Validate(validate).
			Value(&result).
			Run()

		return result, err
	}
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for phrases in a loop",
	Long: `Prompt for phrases and print each result. Phrases are checked as you
type; an empty line ends the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stdinIsTerminal() {
			return fmt.Errorf("interactive mode needs a terminal; pipe phrases to 'fuzzydate batch' instead")
		}

		s, err := loadSettings()
		if err != nil {
			return err
		}

		return runInteractive(cmd.OutOrStdout(), s, newPromptFunc())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(w io.Writer, s *settings, prompt PromptFunc) error {
	parser := s.sessionParser()

	validate := func(phrase string) error {
		if strings.TrimSpace(phrase) == "" {
			return nil
		}

		_, err := parser.Compile(phrase)

		return err
	}

	for {
		phrase, err := prompt(validate)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}

		if err != nil {
			return err
		}

		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return nil
		}

		t, err := parser.Parse(phrase)
		if err != nil {
			renderPhraseError(w, &phraseError{phrase: phrase, err: err})

			continue
		}

		fmt.Fprintf(w, "%s  %s\n", Silent(phrase), Info(s.format(t)))
	}
}
