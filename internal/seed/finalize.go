// Package seed manages the JSON seed-data files consumed downstream:
// finalizing parsed records, generating synthetic ones, and labelling
// records with ship names.
package seed

import (
	"sort"

	"github.com/fleetlab/ocmr/internal/model"
)

// Finalize prepares one category's records for serialization: duplicates by
// sample identifier collapse to the last-seen occurrence, records sort
// ascending by total running hours (raw or missing values sort as zero),
// and ids are re-assigned as a gap-free sequence starting at 1. Input ids,
// whatever they were, are discarded.
func Finalize(records []model.Record) []model.Record {
	// Last write wins per sample_id, preserving first-seen position the way
	// an insertion-ordered map would
	index := make(map[string]int)
	var unique []model.Record
	for _, rec := range records {
		if rec.SampleID == "" {
			continue
		}
		if at, ok := index[rec.SampleID]; ok {
			unique[at] = rec
			continue
		}
		index[rec.SampleID] = len(unique)
		unique = append(unique, rec)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].TotalHrs.SortKey() < unique[j].TotalHrs.SortKey()
	})

	for i := range unique {
		unique[i].ID = i + 1
	}
	return unique
}
