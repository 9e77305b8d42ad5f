package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetlab/ocmr/internal/seed"
)

var (
	assignSeedFile string
	assignShips    []string
)

// assignCmd represents the assign command
var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign ship names to seed-data records",
	Long: `Assign labels every record in a seed-data file with a ship name in
round-robin order, distributing records evenly across the fleet.
Existing ship names are overwritten.

Example:
  ocmr assign --seed-file lib/seed-data-new.json
  ocmr assign --seed-file seed.json --ships SAGARA --ships SAYURA`,
	RunE: runAssign,
}

func init() {
	rootCmd.AddCommand(assignCmd)

	assignCmd.Flags().StringVar(&assignSeedFile, "seed-file", "lib/seed-data-new.json", "seed-data file to label")
	assignCmd.Flags().StringArrayVar(&assignShips, "ships", seed.Ships, "ship names, in assignment order")
}

func runAssign(cmd *cobra.Command, args []string) error {
	records, err := seed.Load(assignSeedFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d records\n", len(records))

	seed.AssignShips(records, assignShips)

	if err := seed.Save(assignSeedFile, records); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Updated %s\n", assignSeedFile)
	for _, line := range seed.FormatCounts(seed.CountByShip(records)) {
		fmt.Fprintf(os.Stderr, "  %s\n", line)
	}
	return nil
}
