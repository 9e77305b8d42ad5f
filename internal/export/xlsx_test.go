package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/fleetlab/ocmr/internal/model"
)

func TestRecordsXLSX(t *testing.T) {
	rec := model.NewHistoricalRecord("S/I-M1234", "2025-06-01 10:00:00")
	rec.ID = 1
	rec.ShipName = "GAJABAHU"
	rec.OilHrs = model.Number(150)
	rec.TotalHrs = model.Number(9800)
	rec.Viscosity40 = model.Number(142.3)
	rec.WaterContent = model.Raw("<0.1")
	rec.FePPM = model.Number(12)

	data, err := RecordsXLSX([]model.Record{rec})
	if err != nil {
		t.Fatalf("RecordsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != sheetName {
		t.Fatalf("sheets = %v, want [%q]", sheets, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := len(rows[0]); got != len(headers) {
		t.Errorf("header row has %d cells, want %d", got, len(headers))
	}
	for i, h := range headers {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	cells := map[string]string{
		"A2": "1",          // id
		"B2": "S/I-M1234",  // sample id
		"C2": "GAJABAHU",   // ship
		"F2": "9800",       // total hrs
		"K2": "<0.1",       // water content stays verbatim
		"M2": "12",         // fe ppm
		"U2": model.StatusOptimal,
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestRecordsXLSXEmpty(t *testing.T) {
	data, err := RecordsXLSX(nil)
	if err != nil {
		t.Fatalf("RecordsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}
