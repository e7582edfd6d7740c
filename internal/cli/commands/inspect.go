package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/eyecatcher/pkg/config"
	"github.com/ccollicutt/eyecatcher/pkg/dump"
	"github.com/ccollicutt/eyecatcher/pkg/eyecatcher"
	"github.com/ccollicutt/eyecatcher/pkg/output"
	"github.com/ccollicutt/eyecatcher/pkg/summary"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output    string
	ChunkSize int
	Top       int
}

// InspectResult describes a dump without writing any files.
type InspectResult struct {
	File        string          `json:"file"`
	Marker      string          `json:"marker"`
	Bytes       int64           `json:"bytes"`
	Chunks      int             `json:"chunks"`
	Records     int             `json:"records"`
	Runs        int             `json:"runs"`
	Eyecatchers int             `json:"eyecatchers"`
	Unique      int             `json:"unique"`
	Top         []summary.Entry `json:"top"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <dump-file>...",
		Short: "Report eyecatcher statistics for dumps without writing files",
		Long: `Scan binary dumps and report what extract would find in each.

Reports bytes read, records, printable runs and eyecatchers, together with the
most frequent eyecatchers. Arguments may be file paths or glob patterns.
Nothing is written to disk.

Example:
  eyecatcher inspect core.dmp
  eyecatcher inspect --top 25 -o json 'dumps/*.dmp'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", output.FormatText, "Output format (text|json)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", dump.DefaultChunkSize, "Read chunk size in bytes")
	cmd.Flags().IntVarP(&opts.Top, "top", "n", 0, "Only show the N most frequent eyecatchers (0 = all)")

	return cmd
}

func runInspect(cmd *cobra.Command, patterns []string, opts *InspectOptions) error {
	ctx := commandContext(cmd)

	if err := output.CheckFormat(opts.Output); err != nil {
		return err
	}

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
	limit := output.FormatOptions{Top: cfg.Top}
	if cmd.Flags().Changed("top") {
		if opts.Top < 0 {
			return fmt.Errorf("invalid top %d: must be >= 0", opts.Top)
		}
		limit.Top = opts.Top
	}

	files, err := dump.ExpandGlobs(patterns)
	if err != nil {
		return err
	}

	results := make([]InspectResult, 0, len(files))
	for _, path := range files {
		result, err := inspectFile(ctx, path, chunkSize, cfg, limit)
		if err != nil {
			return err
		}
		results = append(results, *result)
	}

	w := cmd.OutOrStdout()
	if opts.Output == output.FormatJSON {
		return output.WriteJSON(w, results)
	}
	for i := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printInspectResult(w, &results[i])
	}
	return nil
}

func inspectFile(ctx context.Context, path string, chunkSize int, cfg *config.Config, limit output.FormatOptions) (*InspectResult, error) {
	if err := requireInputFile(path); err != nil {
		return nil, err
	}

	src, err := dump.Open(path, chunkSize)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	counter := summary.NewCounter()
	res, err := eyecatcher.Extract(ctx, src, io.Discard,
		eyecatcher.WithMarker(cfg.Marker.Compiled()),
		eyecatcher.WithMinRun(cfg.MinRun),
		eyecatcher.WithLineFunc(func(line string) { counter.Add(line) }),
	)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	stats := src.Stats()
	return &InspectResult{
		File:        path,
		Marker:      cfg.Marker.Compiled().String(),
		Bytes:       stats.BytesRead,
		Chunks:      stats.Chunks,
		Records:     res.Records,
		Runs:        res.Runs,
		Eyecatchers: res.Lines,
		Unique:      counter.Unique(),
		Top:         limit.Limit(counter.Entries()),
	}, nil
}

func printInspectResult(w io.Writer, r *InspectResult) {
	fmt.Fprintf(w, "File:        %s\n", r.File)
	fmt.Fprintf(w, "Marker:      %s\n", r.Marker)
	fmt.Fprintf(w, "Bytes:       %d (%d chunk(s))\n", r.Bytes, r.Chunks)
	fmt.Fprintf(w, "Records:     %d\n", r.Records)
	fmt.Fprintf(w, "Runs:        %d\n", r.Runs)
	fmt.Fprintf(w, "Eyecatchers: %d (%d unique)\n", r.Eyecatchers, r.Unique)

	if len(r.Top) == 0 {
		return
	}
	fmt.Fprintf(w, "\nMost frequent:\n")
	for _, e := range r.Top {
		fmt.Fprintf(w, "  %6d  %q\n", e.Count, e.Text)
	}
}
