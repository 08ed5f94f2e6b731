package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fuzzydate/internal/batch"
	"fuzzydate/internal/sinks"
	"fuzzydate/pkg/interfaces"

	"github.com/spf13/cobra"
)

var (
	batchFile    string
	batchWorkers int
	batchOutput  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve one phrase per line from a file or stdin",
	Long: `Resolve one phrase per line against a single anchor. Blank lines and
lines starting with # are skipped. Results are printed in input order; a
phrase that fails is reported in its own row and does not stop the run.

Examples:
  fuzzydate batch --file phrases.txt
  printf 'tomorrow\nnext friday at 5pm\n' | fuzzydate batch --output json
  fuzzydate batch -r 2025-01-31T09:00:00Z --workers 4 < phrases.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchFile == "" || batchFile == "-" {
			return runBatch(cmd, os.Stdin)
		}

		f, err := os.Open(batchFile)
		if err != nil {
			return fmt.Errorf("failed to open phrase file: %w", err)
		}
		defer f.Close()

		return runBatch(cmd, f)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchFile, "file", "", "File with one phrase per line (default stdin)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Maximum phrases resolved concurrently (default from config, 0 = GOMAXPROCS)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "Output format (text, yaml, json)")
}

func runBatch(cmd *cobra.Command, r io.Reader) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	if batchWorkers > 0 {
		s.cfg.Batch.Workers = batchWorkers
	}

	if batchOutput != "" {
		s.cfg.Batch.Output = batchOutput
	}

	phrases, err := batch.ReadPhrases(r)
	if err != nil {
		return err
	}

	sink, err := sinks.NewSink(s.cfg.Batch.Output, cmd.OutOrStdout(), sinks.Options{
		Layout:   s.cfg.Format,
		Location: s.outLoc,
	})
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(s.parser, s.cfg.Batch.CacheSize)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := runner.Run(ctx, phrases, []interfaces.Sink{sink}, batch.Options{
		Anchor:   s.anchor,
		Location: s.inLoc,
		Workers:  s.cfg.Batch.Workers,
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if result.Failed > 0 {
		slog.Info("some phrases could not be resolved", "failed", result.Failed, "total", len(phrases))
	}

	return nil
}
