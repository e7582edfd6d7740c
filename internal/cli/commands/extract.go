package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/eyecatcher/pkg/dump"
	"github.com/ccollicutt/eyecatcher/pkg/eyecatcher"
	"github.com/ccollicutt/eyecatcher/pkg/logging"
)

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	InputFile  string
	OutputFile string
	ChunkSize  int
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract BIP eyecatchers from a binary dump",
		Long: `Extract eyecatcher strings from a binary diagnostic dump.

The dump is read in chunks and split into NUL-separated records. Every run of
at least 4 printable characters that contains >BIP followed by four digits or
word characters is written to the output file, one run per line, in the order
found.

Example:
  eyecatcher extract --input-file core.dmp --output-file eyecatchers.txt
  eyecatcher extract --input-file core.dmp --output-file out.txt --chunk-size 1048576`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.InputFile, "input-file", "", "Path to the binary dump file (required)")
	cmd.Flags().StringVar(&opts.OutputFile, "output-file", "", "Path to write extracted eyecatcher lines (required)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", dump.DefaultChunkSize, "Read chunk size in bytes")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *ExtractOptions) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	chunkSize := cfg.ChunkSize
	if cmd.Flags().Changed("chunk-size") {
		if opts.ChunkSize <= 0 {
			return fmt.Errorf("invalid chunk-size %d: must be > 0", opts.ChunkSize)
		}
		chunkSize = opts.ChunkSize
	}

	if err := requireInputFile(opts.InputFile); err != nil {
		return err
	}

	log := logging.ForRun(logging.FromContext(ctx), "extract").WithFields(logrus.Fields{
		"input":      opts.InputFile,
		"output":     opts.OutputFile,
		"chunk_size": chunkSize,
		"marker":     cfg.Marker.Compiled().String(),
	})
	log.Debug("starting extraction")

	src, err := dump.Open(opts.InputFile, chunkSize)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(opts.OutputFile) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	result, err := eyecatcher.Extract(ctx, src, out,
		eyecatcher.WithMarker(cfg.Marker.Compiled()),
		eyecatcher.WithMinRun(cfg.MinRun),
	)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	if err != nil {
		log.WithError(err).WithField("lines", result.Lines).Error("extraction failed")
		return fmt.Errorf("extracting eyecatchers: %w", err)
	}

	stats := src.Stats()
	log.WithFields(logrus.Fields{
		"bytes":   stats.BytesRead,
		"chunks":  stats.Chunks,
		"records": result.Records,
		"runs":    result.Runs,
		"lines":   result.Lines,
	}).Info("extraction complete")

	fmt.Fprintf(cmd.OutOrStdout(), "Done. Wrote %d eyecatcher line(s) to: %s\n", result.Lines, opts.OutputFile)
	return nil
}
