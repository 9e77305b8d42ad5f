package model

// Category identifies which piece of machinery a sample block belongs to.
// Reports interleave readings for several engines or gearbox sides; the
// classifier assigns exactly one category per block.
type Category string

const (
	CategoryPort    Category = "Port"
	CategoryStbd    Category = "Stbd"
	CategoryNo1     Category = "No1"
	CategoryNo2     Category = "No2"
	CategoryDefault Category = "Default"
)

// Record is one oil sample: its identifier, the extracted lab readings, and
// the static assessment defaults seeded for historical data. The JSON key
// set is a stable contract with the seed-data consumers.
type Record struct {
	ID             int    `json:"id"`
	SampleID       string `json:"sample_id"`
	OilHrs         Value  `json:"oil_hrs"`
	TotalHrs       Value  `json:"total_hrs"`
	Viscosity40    Value  `json:"viscosity_40"`
	Viscosity100   Value  `json:"viscosity_100"`
	ViscosityIndex Value  `json:"viscosity_index"`
	TBN            Value  `json:"tbn"`
	WaterContent   Value  `json:"water_content"`
	FlashPoint     Value  `json:"flash_point"`
	FePPM          Value  `json:"fe_ppm"`
	CrPPM          Value  `json:"cr_ppm"`
	SiPPM          Value  `json:"si_ppm"`
	AlPPM          Value  `json:"al_ppm"`
	PbPPM          Value  `json:"pb_ppm"`
	CuPPM          Value  `json:"cu_ppm"`
	SnPPM          Value  `json:"sn_ppm"`
	NiPPM          Value  `json:"ni_ppm"`
	OilRefillStart int    `json:"oil_refill_start"`
	OilTopup       int    `json:"oil_topup"`
	HealthScoreLag float64 `json:"health_score_lag_1"`
	MLRawScore     float64 `json:"ml_raw_score"`
	FinalScore     float64 `json:"gemini_final_score"`
	Status         string `json:"status"`
	Trend          string `json:"trend"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
	CreatedAt      string `json:"created_at"`
	ShipName       string `json:"ship_name,omitempty"`
}

// Assessment statuses, ordered from healthy to service-required
const (
	StatusOptimal     = "OPTIMAL_CONDITION"
	StatusNormalWear  = "NORMAL_WEAR"
	StatusAttention   = "ATTENTION_REQUIRED"
	StatusMaintenance = "MAINTENANCE_DUE"
)

// Trend labels
const (
	TrendImproving = "IMPROVING"
	TrendStable    = "STABLE"
	TrendDegrading = "DEGRADING"
)

// NewHistoricalRecord returns a record pre-filled with the defaults used for
// data recovered from archived reports: placeholder scores, a stable trend,
// and "historical" confidence. Extracted readings are filled in afterwards.
func NewHistoricalRecord(sampleID, createdAt string) Record {
	return Record{
		SampleID:       sampleID,
		OilHrs:         Null(),
		TotalHrs:       Null(),
		Viscosity40:    Null(),
		Viscosity100:   Null(),
		ViscosityIndex: Null(),
		TBN:            Null(),
		WaterContent:   Null(),
		FlashPoint:     Null(),
		FePPM:          Null(),
		CrPPM:          Null(),
		SiPPM:          Null(),
		AlPPM:          Null(),
		PbPPM:          Null(),
		CuPPM:          Null(),
		SnPPM:          Null(),
		NiPPM:          Null(),
		OilRefillStart: 0,
		OilTopup:       0,
		HealthScoreLag: 0.1,
		MLRawScore:     0.1,
		FinalScore:     0.1,
		Status:         StatusOptimal,
		Trend:          TrendStable,
		Recommendation: "Maintain current operations",
		Confidence:     "historical",
		CreatedAt:      createdAt,
	}
}
