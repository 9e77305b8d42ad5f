package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the three shapes a lab reading can take
type ValueKind int

const (
	KindNull   ValueKind = iota // value absent or explicitly not-available
	KindNumber                  // parsed numeric reading
	KindRaw                     // unparseable token preserved verbatim
)

// Value is a lab reading as it appears in a report: a number, a raw token
// that failed numeric parsing, or nothing at all. Downstream consumers must
// handle all three — reports mix numeric columns with markers like "N/C"
// and occasionally garbled tokens that are kept as-is rather than dropped.
type Value struct {
	kind ValueKind
	num  float64
	raw  string
}

// Null returns the absent value
func Null() Value {
	return Value{kind: KindNull}
}

// Number returns a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Raw returns a verbatim string value
func Raw(s string) Value {
	return Value{kind: KindRaw, raw: s}
}

// Kind returns the value's discriminant
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is absent
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Float returns the numeric reading and whether one is present
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String returns a display form of the value
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindRaw:
		return v.raw
	default:
		return ""
	}
}

// SortKey returns the numeric reading, or 0 for raw and null values.
// Matches the ordering contract for seed files: non-numeric sorts first.
func (v Value) SortKey() float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return 0
}

// MarshalJSON encodes null, a JSON number, or a JSON string
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindRaw:
		return json.Marshal(v.raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts null, numbers, and strings
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*v = Null()
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*v = Raw(raw)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("value: %w", err)
	}
	*v = Number(num)
	return nil
}

// Tokens treated as an explicit "no reading" marker in reports
var nullMarkers = map[string]bool{
	"N/A": true,
	"N/C": true,
	"N/I": true,
	"-":   true,
	"":    true,
}

// ParseValue normalizes one raw value token from a report.
// Markers become Null, a leading "<" becomes the 0.5 trace sentinel, numbers
// lose their thousands separators, and anything else passes through as Raw.
func ParseValue(tok string) Value {
	tok = strings.TrimSpace(tok)
	if nullMarkers[strings.ToUpper(tok)] {
		return Null()
	}

	// "<1.00" and the HTML-escaped "&lt;1.00" both mean trace amounts
	if strings.HasPrefix(tok, "<") || strings.HasPrefix(tok, "&lt;") {
		return Number(0.5)
	}

	clean := strings.ReplaceAll(tok, ",", "")
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return Number(f)
	}
	return Raw(tok)
}
