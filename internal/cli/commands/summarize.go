package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/eyecatcher/pkg/logging"
	"github.com/ccollicutt/eyecatcher/pkg/output"
	"github.com/ccollicutt/eyecatcher/pkg/summary"
)

// SummarizeOptions holds command-line options for the summarize command.
type SummarizeOptions struct {
	InputFile  string
	OutputFile string
	Format     string
	Top        int
}

// NewSummarizeCommand creates the summarize command.
func NewSummarizeCommand() *cobra.Command {
	opts := &SummarizeOptions{}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Count eyecatcher occurrences",
		Long: `Count the occurrences of each line in an eyecatchers file.

Writes "<eyecatcher> <count>" per line, most frequent first. Eyecatchers with
the same count keep the order in which they first appeared. Empty lines are
ignored.

Example:
  eyecatcher summarize --input-file eyecatchers.txt --output-file summary.txt
  eyecatcher summarize --input-file eyecatchers.txt --output-file summary.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.InputFile, "input-file", "", "Path to the eyecatchers text file (required)")
	cmd.Flags().StringVar(&opts.OutputFile, "output-file", "", "Path to write the summary (required)")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", output.FormatText, "Output format (text|json)")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "Only write the N most frequent eyecatchers (0 = all)")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func runSummarize(cmd *cobra.Command, opts *SummarizeOptions) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	format := cfg.SummaryFormat
	if cmd.Flags().Changed("format") {
		format = opts.Format
	}
	top := cfg.Top
	if cmd.Flags().Changed("top") {
		if opts.Top < 0 {
			return fmt.Errorf("invalid top %d: must be >= 0", opts.Top)
		}
		top = opts.Top
	}

	formatter, err := output.NewFormatter(format, output.FormatOptions{Top: top})
	if err != nil {
		return err
	}

	if err := requireInputFile(opts.InputFile); err != nil {
		return err
	}

	log := logging.ForRun(logging.FromContext(ctx), "summarize").WithFields(logrus.Fields{
		"input":  opts.InputFile,
		"output": opts.OutputFile,
		"format": formatter.Name(),
	})

	counter, err := summary.CountFile(ctx, opts.InputFile)
	if err != nil {
		return err
	}
	report := output.NewReport(counter, opts.InputFile)

	out, err := os.Create(opts.OutputFile) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	err = formatter.Format(ctx, report, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	log.WithFields(logrus.Fields{
		"lines":  report.Summary.LinesRead,
		"total":  report.Summary.Total,
		"unique": report.Summary.Unique,
	}).Info("summary complete")

	fmt.Fprintf(cmd.OutOrStdout(), "Done. Unique eyecatchers: %d. Output written to: %s\n", report.Summary.Unique, opts.OutputFile)
	return nil
}
