package report

import (
	"strings"
	"testing"

	"github.com/fleetlab/ocmr/internal/model"
)

// classifyText classifies a block that starts right after the given window
func classifyText(t *testing.T, window string) model.Category {
	t.Helper()
	tokens := Tokenize(window + " S/I-M1")
	blocks := FindBlocks(tokens)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	return Classify(tokens, blocks[0])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   model.Category
	}{
		{"port engine", "MAIN ENGINE PORT SIDE", model.CategoryPort},
		{"stbd engine", "MAIN ENGINE STBD SIDE", model.CategoryStbd},
		{"starboard spelled out", "STARBOARD GEARBOX", model.CategoryStbd},
		{"no 01 spaced", "DIESEL ALTERNATOR NO 01", model.CategoryNo1},
		{"no 01 dotted", "DIESEL ALTERNATOR NO.01", model.CategoryNo1},
		{"no 01 dot space", "DIESEL ALTERNATOR NO. 01", model.CategoryNo1},
		{"no 02", "DIESEL ALTERNATOR NO 02", model.CategoryNo2},
		{"nothing recognized", "MAIN ENGINE LUBE OIL", model.CategoryDefault},
		{"lower case window", "main engine port side", model.CategoryPort},

		// Tie-breaks are positional for Port vs Stbd: Port wins only when
		// no STBD mention follows the last PORT mention
		{"stbd then port", "STBD SIDE PORT ENGINE", model.CategoryPort},
		{"port then stbd", "PORT SIDE STBD ENGINE", model.CategoryStbd},
		{"port stbd port", "PORT STBD PORT ENGINE", model.CategoryPort},

		// Side keywords outrank machinery numbers regardless of order
		{"no 01 then stbd", "NO 01 ENGINE STBD SIDE", model.CategoryStbd},
		{"no 01 then port", "NO 01 ENGINE PORT SIDE", model.CategoryPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyText(t, tt.window); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.window, got, tt.want)
			}
		})
	}
}

func TestClassifyLookbackClamp(t *testing.T) {
	// Keyword beyond the 500-token window must not influence the category
	far := "PORT " + strings.Repeat("x ", lookbackTokens)
	if got := classifyText(t, far); got != model.CategoryDefault {
		t.Errorf("keyword beyond lookback classified as %q, want Default", got)
	}

	// The same keyword inside the window does
	near := strings.Repeat("x ", 10) + "PORT"
	if got := classifyText(t, near); got != model.CategoryPort {
		t.Errorf("keyword inside lookback classified as %q, want Port", got)
	}
}
