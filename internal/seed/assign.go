package seed

import "github.com/fleetlab/ocmr/internal/model"

// AssignShips labels records with ship names in round-robin order, which
// distributes them as evenly as the record count allows. Existing labels
// are overwritten. Records are modified in place.
func AssignShips(records []model.Record, ships []string) {
	if len(ships) == 0 {
		return
	}
	for i := range records {
		records[i].ShipName = ships[i%len(ships)]
	}
}
