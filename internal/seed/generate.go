package seed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/fleetlab/ocmr/internal/model"
)

// Ships in the fleet, in assignment order
var Ships = []string{"GAJABAHU", "SAGARA", "SAYURA", "SHAKTHI", "VIJAYABAHU"}

// valueRange bounds one synthesized parameter
type valueRange struct {
	min, max float64
}

// Realistic ranges for naval engine oil analysis
var ranges = map[string]valueRange{
	"oil_hrs":         {100, 5000},
	"total_hrs":       {92000, 115000},
	"viscosity_40":    {120, 155},
	"viscosity_100":   {12.5, 16.5},
	"viscosity_index": {85, 115},
	"fe_ppm":          {0.5, 30},
	"cr_ppm":          {0.5, 5},
	"si_ppm":          {0.5, 10},
	"al_ppm":          {0.5, 15},
	"pb_ppm":          {0.5, 25},
	"cu_ppm":          {0.5, 15},
	"sn_ppm":          {0.5, 5},
	"ni_ppm":          {0.5, 5},
	"tbn":             {5, 12},
	"flash_point":     {200, 220},
}

var trends = []string{model.TrendImproving, model.TrendStable, model.TrendDegrading}

// Recommendations keyed by assessment status
var Recommendations = map[string]string{
	model.StatusOptimal:     "Maintain current operations, all parameters normal",
	model.StatusNormalWear:  "Continue routine maintenance, expected wear patterns",
	model.StatusAttention:   "Schedule inspection within 30 days, elevated wear detected",
	model.StatusMaintenance: "Plan maintenance within 2 weeks, service required",
}

// Generator synthesizes realistic oil-analysis records. A fixed seed makes
// a run reproducible end to end.
type Generator struct {
	rng      *rand.Rand
	baseDate time.Time
}

// NewGenerator creates a generator seeded for reproducibility, with
// timestamps spread backwards from baseDate.
func NewGenerator(seedVal int64, baseDate time.Time) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seedVal)),
		baseDate: baseDate,
	}
}

// optional draws a parameter value with a 20% chance of absence
func (g *Generator) optional(key string) model.Value {
	if g.rng.Float64() < 0.2 {
		return model.Null()
	}
	return g.required(key)
}

// required always draws a parameter value
func (g *Generator) required(key string) model.Value {
	r, ok := ranges[key]
	if !ok {
		return model.Null()
	}
	v := g.rng.Float64()*(r.max-r.min) + r.min
	if key == "oil_hrs" || key == "total_hrs" {
		return model.Number(roundTo(v, 2))
	}
	return model.Number(roundTo(v, 3))
}

// orDefault substitutes a fallback when an optional draw came up null
func orDefault(v model.Value, fallback float64) model.Value {
	if v.IsNull() {
		return model.Number(fallback)
	}
	return v
}

// HealthScore estimates condition from wear metals and viscosity drift.
// Higher metal content and larger deviation from the ideal viscosity of 140
// both push the score up (worse).
func (g *Generator) HealthScore(fe, pb, cu, al, si, viscosity float64) float64 {
	metal := (fe + pb + cu + al + si) / 500
	visc := math.Abs(viscosity-140) / 500
	score := math.Min(metal+visc+g.rng.Float64()*0.15-0.05, 0.9)
	return math.Max(0, roundTo(score, 5))
}

// StatusFor maps a health score to an assessment status
func StatusFor(score float64) string {
	switch {
	case score < 0.15:
		return model.StatusOptimal
	case score < 0.35:
		return model.StatusNormalWear
	case score < 0.55:
		return model.StatusAttention
	default:
		return model.StatusMaintenance
	}
}

// Record synthesizes one record for a ship
func (g *Generator) Record(shipName string, id int) model.Record {
	fe := orDefault(g.optional("fe_ppm"), 5.0)
	si := orDefault(g.optional("si_ppm"), 2.0)
	al := orDefault(g.optional("al_ppm"), 1.0)
	pb := orDefault(g.optional("pb_ppm"), 2.0)
	cu := orDefault(g.optional("cu_ppm"), 3.0)

	oilHrs := g.required("oil_hrs")
	visc40 := g.required("viscosity_40")

	feF, _ := fe.Float()
	pbF, _ := pb.Float()
	cuF, _ := cu.Float()
	alF, _ := al.Float()
	siF, _ := si.Float()
	visc40F, _ := visc40.Float()
	score := g.HealthScore(feF, pbF, cuF, alF, siF, visc40F)
	status := StatusFor(score)

	water := "<0.1"
	if g.rng.Float64() >= 0.8 {
		water = "<0.2"
	}

	refill := 0
	if oilF, _ := oilHrs.Float(); oilF < 200 {
		refill = 1
	}
	topup := 0
	if g.rng.Intn(4) == 3 {
		topup = 1
	}

	createdAt := g.baseDate.AddDate(0, 0, -g.rng.Intn(181)).Format("2006-01-02 15:04:05")

	return model.Record{
		ID:             id,
		SampleID:       fmt.Sprintf("S/I-M%04d", 9000+id),
		OilHrs:         oilHrs,
		TotalHrs:       g.required("total_hrs"),
		Viscosity40:    visc40,
		Viscosity100:   g.optional("viscosity_100"),
		ViscosityIndex: g.optional("viscosity_index"),
		TBN:            g.optional("tbn"),
		WaterContent:   model.Raw(water),
		FlashPoint:     g.optional("flash_point"),
		FePPM:          fe,
		CrPPM:          g.optional("cr_ppm"),
		SiPPM:          si,
		AlPPM:          al,
		PbPPM:          pb,
		CuPPM:          cu,
		SnPPM:          g.optional("sn_ppm"),
		NiPPM:          g.optional("ni_ppm"),
		OilRefillStart: refill,
		OilTopup:       topup,
		HealthScoreLag: roundTo(g.rng.Float64()*0.3, 5),
		MLRawScore:     score,
		FinalScore:     score,
		Status:         status,
		Trend:          trends[g.rng.Intn(len(trends))],
		Recommendation: Recommendations[status],
		Confidence:     "historical",
		CreatedAt:      createdAt,
		ShipName:       shipName,
	}
}

// Generate appends perShip synthetic records for every ship to the existing
// set, numbering new records from max(existing id)+1, and returns the
// combined set sorted by id.
func (g *Generator) Generate(existing []model.Record, perShip int) []model.Record {
	nextID := 1
	for _, rec := range existing {
		if rec.ID >= nextID {
			nextID = rec.ID + 1
		}
	}

	all := append([]model.Record{}, existing...)
	for _, ship := range Ships {
		for i := 0; i < perShip; i++ {
			all = append(all, g.Record(ship, nextID))
			nextID++
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// CountByShip tallies records per ship name
func CountByShip(records []model.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.ShipName]++
	}
	return counts
}

// FormatCounts renders per-ship tallies in a stable order
func FormatCounts(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %d records", name, counts[name])
	}
	return lines
}
