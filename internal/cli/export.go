package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetlab/ocmr/internal/export"
	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/seed"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <seed-file>...",
	Short: "Export seed-data files to an XLSX workbook",
	Long: `Export concatenates one or more seed-data files and writes them as a
single-sheet XLSX workbook for manual review.

Example:
  ocmr export lib/seed-data-new.json --xlsx oil-analysis.xlsx
  ocmr export seed-port.json seed-stbd.json --xlsx combined.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "xlsx", "oil-analysis.xlsx", "output workbook path")
}

func runExport(cmd *cobra.Command, args []string) error {
	var records []model.Record
	for _, path := range args {
		recs, err := seed.Load(path)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d records from %s\n", len(recs), path)
		}
		records = append(records, recs...)
	}

	data, err := export.RecordsXLSX(records)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %d records to %s\n", len(records), exportOut)
	return nil
}
