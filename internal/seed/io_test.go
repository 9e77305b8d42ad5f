package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fleetlab/ocmr/internal/model"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")

	out := []model.Record{
		func() model.Record {
			r := model.NewHistoricalRecord("S/I-M1", "2025-07-11 10:00:00")
			r.ID = 1
			r.TotalHrs = model.Number(92000)
			r.WaterContent = model.Raw("<0.1")
			return r
		}(),
	}

	if err := Save(path, out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(back) != 1 {
		t.Fatalf("loaded %d records, want 1", len(back))
	}
	if back[0] != out[0] {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", back[0], out[0])
	}
}

func TestSaveUsesConsumerIndentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty seed file = %q, want an empty array", data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("expected an error for a missing seed file")
	}
}
