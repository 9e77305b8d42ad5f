package model

import (
	"encoding/json"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{"plain number", "142.5", Number(142.5)},
		{"integer", "4200", Number(4200)},
		{"thousands separator", "1,234.5", Number(1234.5)},
		{"trace amount", "<5.00", Number(0.5)},
		{"trace with space", "< 1.00", Number(0.5)},
		{"html escaped trace", "&lt;0.1", Number(0.5)},
		{"not available", "N/A", Null()},
		{"not checked", "N/C", Null()},
		{"not indicated", "N/I", Null()},
		{"dash", "-", Null()},
		{"empty", "", Null()},
		{"lowercase marker", "n/a", Null()},
		{"whitespace only", "   ", Null()},
		{"unparseable passthrough", "12..3.x", Raw("12..3.x")},
		{"starred number is not numeric", "118*", Raw("118*")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.in)
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		json string
	}{
		{"number", Number(1234.5), "1234.5"},
		{"null", Null(), "null"},
		{"raw", Raw("118*"), `"118*"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.json {
				t.Errorf("marshal = %s, want %s", data, tt.json)
			}

			var back Value
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.in {
				t.Errorf("round trip = %v, want %v", back, tt.in)
			}
		})
	}
}

func TestValueSortKey(t *testing.T) {
	if got := Number(92000).SortKey(); got != 92000 {
		t.Errorf("numeric sort key = %v, want 92000", got)
	}
	if got := Raw("garbled").SortKey(); got != 0 {
		t.Errorf("raw sort key = %v, want 0", got)
	}
	if got := Null().SortKey(); got != 0 {
		t.Errorf("null sort key = %v, want 0", got)
	}
}
