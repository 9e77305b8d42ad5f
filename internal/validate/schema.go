// Package validate checks seed-data files against the record schema that
// downstream consumers depend on. Parameter fields are nullable and may be
// number or string, matching the lenient value policy of the parser.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema is the JSON Schema for one seed-data file: an array of
// records with the stable key set. Parameter readings allow number, string
// (raw passthrough), or null.
const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "$defs": {
    "reading": {"type": ["number", "string", "null"]}
  },
  "items": {
    "type": "object",
    "required": [
      "id", "sample_id",
      "oil_hrs", "total_hrs",
      "viscosity_40", "viscosity_100", "viscosity_index",
      "tbn", "water_content", "flash_point",
      "fe_ppm", "cr_ppm", "si_ppm", "al_ppm",
      "pb_ppm", "cu_ppm", "sn_ppm", "ni_ppm",
      "oil_refill_start", "oil_topup",
      "health_score_lag_1", "ml_raw_score", "gemini_final_score",
      "status", "trend", "recommendation", "confidence", "created_at"
    ],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "sample_id": {"type": "string", "minLength": 1},
      "oil_hrs": {"$ref": "#/$defs/reading"},
      "total_hrs": {"$ref": "#/$defs/reading"},
      "viscosity_40": {"$ref": "#/$defs/reading"},
      "viscosity_100": {"$ref": "#/$defs/reading"},
      "viscosity_index": {"$ref": "#/$defs/reading"},
      "tbn": {"$ref": "#/$defs/reading"},
      "water_content": {"$ref": "#/$defs/reading"},
      "flash_point": {"$ref": "#/$defs/reading"},
      "fe_ppm": {"$ref": "#/$defs/reading"},
      "cr_ppm": {"$ref": "#/$defs/reading"},
      "si_ppm": {"$ref": "#/$defs/reading"},
      "al_ppm": {"$ref": "#/$defs/reading"},
      "pb_ppm": {"$ref": "#/$defs/reading"},
      "cu_ppm": {"$ref": "#/$defs/reading"},
      "sn_ppm": {"$ref": "#/$defs/reading"},
      "ni_ppm": {"$ref": "#/$defs/reading"},
      "oil_refill_start": {"type": "integer", "enum": [0, 1]},
      "oil_topup": {"type": "integer", "enum": [0, 1]},
      "health_score_lag_1": {"type": "number", "minimum": 0, "maximum": 1},
      "ml_raw_score": {"type": "number", "minimum": 0, "maximum": 1},
      "gemini_final_score": {"type": "number", "minimum": 0, "maximum": 1},
      "status": {"type": "string", "enum": [
        "OPTIMAL_CONDITION", "NORMAL_WEAR", "ATTENTION_REQUIRED", "MAINTENANCE_DUE"
      ]},
      "trend": {"type": "string", "enum": ["IMPROVING", "STABLE", "DEGRADING"]},
      "recommendation": {"type": "string"},
      "confidence": {"type": "string"},
      "created_at": {
        "type": "string",
        "pattern": "^\\d{4}-\\d{2}-\\d{2} \\d{2}:\\d{2}:\\d{2}$"
      },
      "ship_name": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("seed-record.schema.json", strings.NewReader(recordSchema)); err != nil {
		panic(err)
	}
	return c.MustCompile("seed-record.schema.json")
}

// SeedFile validates one seed-data payload. The returned error carries the
// schema violation details.
func SeedFile(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
