package report

import (
	"strings"

	"github.com/fleetlab/ocmr/internal/model"
)

// parameter binds a record field to its keyword synonyms. Synonyms are
// tried in order; several entries carry converter artifacts observed in
// real reports (doubled letters, shifted spacing around the unit).
type parameter struct {
	keywords []string
	assign   func(*model.Record, model.Value)
}

var parameters = []parameter{
	{[]string{"Oil Running Hrs", "Oil Running Hours"},
		func(r *model.Record, v model.Value) { r.OilHrs = v }},
	{[]string{"T/R/H of Machinery", "Total Running Hours"},
		func(r *model.Record, v model.Value) { r.TotalHrs = v }},
	{[]string{"Viscosity@ 40oC", "Viscosity @ 40oC", "Viscosity  @ 40oC", "ViViscosity@ 40oC"},
		func(r *model.Record, v model.Value) { r.Viscosity40 = v }},
	{[]string{"Viscosity@ 100oC", "Viscosity @ 100oC", "Viscosity  @ 100oC"},
		func(r *model.Record, v model.Value) { r.Viscosity100 = v }},
	{[]string{"Viscosity Index"},
		func(r *model.Record, v model.Value) { r.ViscosityIndex = v }},
	{[]string{"Total Base No.", "TB No."},
		func(r *model.Record, v model.Value) { r.TBN = v }},
	{[]string{"Water content"},
		func(r *model.Record, v model.Value) { r.WaterContent = v }},
	{[]string{"Flash Point"},
		func(r *model.Record, v model.Value) { r.FlashPoint = v }},
	{[]string{"Fe", "Iron"},
		func(r *model.Record, v model.Value) { r.FePPM = v }},
	{[]string{"Cr", "Chromium"},
		func(r *model.Record, v model.Value) { r.CrPPM = v }},
	{[]string{"Si", "Silicon"},
		func(r *model.Record, v model.Value) { r.SiPPM = v }},
	{[]string{"Al", "Aluminum"},
		func(r *model.Record, v model.Value) { r.AlPPM = v }},
	{[]string{"Pb", "Lead"},
		func(r *model.Record, v model.Value) { r.PbPPM = v }},
	{[]string{"Cu", "Copper"},
		func(r *model.Record, v model.Value) { r.CuPPM = v }},
	{[]string{"Sn", "Tin"},
		func(r *model.Record, v model.Value) { r.SnPPM = v }},
	{[]string{"Ni", "Nickel"},
		func(r *model.Record, v model.Value) { r.NiPPM = v }},
}

// waterContentIndex marks the one parameter whose tokens are kept verbatim.
// Water content readings are almost always trace markers like "<0.1" and the
// seed consumers expect them untouched.
const waterContentIndex = 6

// Parse runs the full segmentation over raw decoded report text and returns
// the extracted records grouped by category. The mapping is owned by the
// caller; nothing is accumulated across calls. An empty map means no sample
// identifiers were found.
func Parse(raw string) map[model.Category][]model.Record {
	text := Normalize(raw)
	createdAt := ExtractCreatedAt(text)
	tokens := Tokenize(text)
	blocks := FindBlocks(tokens)

	categorized := make(map[model.Category][]model.Record)
	for _, block := range blocks {
		category := Classify(tokens, block)
		records := assemble(tokens, block, createdAt)
		categorized[category] = append(categorized[category], records...)
	}
	return categorized
}

// assemble extracts every tracked parameter row for one block and zips the
// rows with the block's sample identifiers.
func assemble(tokens []string, block SampleBlock, createdAt string) []model.Record {
	// Rows are searched only in the text after the block's last identifier
	searchText := strings.Join(tokens[block.End+1:], " ")
	count := block.Count()

	rows := make([][]model.Value, len(parameters))
	for i, param := range parameters {
		raw := ExtractRow(searchText, param.keywords, count)
		if i == waterContentIndex {
			rows[i] = rawRow(raw)
		} else {
			rows[i] = NormalizeRow(raw)
		}
	}

	records := make([]model.Record, count)
	for s := 0; s < count; s++ {
		rec := model.NewHistoricalRecord(block.IDs[s], createdAt)
		for i, param := range parameters {
			param.assign(&rec, rows[i][s])
		}
		records[s] = rec
	}
	return records
}

// rawRow keeps tokens verbatim, mapping only empty slots to null
func rawRow(row []string) []model.Value {
	vals := make([]model.Value, len(row))
	for i, tok := range row {
		if strings.TrimSpace(tok) == "" {
			vals[i] = model.Null()
		} else {
			vals[i] = model.Raw(strings.TrimSpace(tok))
		}
	}
	return vals
}
