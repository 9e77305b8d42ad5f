package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetlab/ocmr/internal/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <seed-file>...",
	Short: "Validate seed-data files against the record schema",
	Long: `Validate checks each seed-data file against the JSON Schema the
downstream consumers depend on: the stable key set, positive ids,
nullable number-or-string parameter readings, and the closed
status/trend vocabularies.

Example:
  ocmr validate lib/seed-data/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failures := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		if err := validate.SeedFile(data); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s\n", path)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(args))
	}
	return nil
}
