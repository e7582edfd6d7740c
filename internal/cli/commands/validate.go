package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/eyecatcher/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an eyecatcher configuration file without scanning anything.

Checks:
  - YAML syntax
  - chunk_size is positive
  - Marker prefix and width
  - min_run and summary_format
  - Environment overrides (EYECATCHER_CHUNK_SIZE, EYECATCHER_MARKER_PREFIX)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Chunk size:     %d bytes\n", cfg.ChunkSize)
	fmt.Fprintf(w, "  Marker:         %s\n", cfg.Marker.Compiled())
	fmt.Fprintf(w, "  Min run:        %d\n", cfg.MinRun)
	fmt.Fprintf(w, "  Summary format: %s\n", cfg.SummaryFormat)
	if cfg.Top > 0 {
		fmt.Fprintf(w, "  Summary top:    %d\n", cfg.Top)
	}

	return nil
}
