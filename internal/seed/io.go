package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fleetlab/ocmr/internal/model"
)

// Load reads a seed-data file into memory
func Load(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return records, nil
}

// Save writes records as a 4-space-indented JSON array, the format the
// downstream seed consumers ingest.
func Save(path string, records []model.Record) error {
	if records == nil {
		// Consumers expect an array even when there is nothing to say
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode seed data: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}
