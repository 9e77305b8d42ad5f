// Package export renders seed-data records as an XLSX workbook for manual
// review by the lab engineers.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fleetlab/ocmr/internal/model"
)

const sheetName = "Oil Analysis"

var headers = []string{
	"ID", "Sample ID", "Ship", "Created At",
	"Oil Hrs", "Total Hrs",
	"Visc @40C", "Visc @100C", "Visc Index",
	"TBN", "Water Content", "Flash Point",
	"Fe ppm", "Cr ppm", "Si ppm", "Al ppm",
	"Pb ppm", "Cu ppm", "Sn ppm", "Ni ppm",
	"Status", "Trend", "Recommendation", "Confidence",
}

// RecordsXLSX returns a single-sheet workbook of the given records
func RecordsXLSX(records []model.Record) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		cols := []interface{}{
			rec.ID, rec.SampleID, rec.ShipName, rec.CreatedAt,
			cellValue(rec.OilHrs), cellValue(rec.TotalHrs),
			cellValue(rec.Viscosity40), cellValue(rec.Viscosity100), cellValue(rec.ViscosityIndex),
			cellValue(rec.TBN), cellValue(rec.WaterContent), cellValue(rec.FlashPoint),
			cellValue(rec.FePPM), cellValue(rec.CrPPM), cellValue(rec.SiPPM), cellValue(rec.AlPPM),
			cellValue(rec.PbPPM), cellValue(rec.CuPPM), cellValue(rec.SnPPM), cellValue(rec.NiPPM),
			rec.Status, rec.Trend, rec.Recommendation, rec.Confidence,
		}
		for col, v := range cols {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue maps the tagged value union onto spreadsheet cell types:
// numbers stay numbers, raw tokens stay strings, nulls become empty cells.
func cellValue(v model.Value) interface{} {
	switch v.Kind() {
	case model.KindNumber:
		f, _ := v.Float()
		return f
	case model.KindRaw:
		return v.String()
	default:
		return ""
	}
}
