package report

import (
	"strings"

	"github.com/fleetlab/ocmr/internal/model"
)

// lookbackTokens bounds how far before a block the classifier searches for
// an equipment keyword, clamped at the start of the document.
const lookbackTokens = 500

// categoryRule is one entry in the ordered classification chain. The first
// rule whose predicate matches the lookback window wins; order IS the
// tie-break and is deliberately explicit rather than buried in nesting.
type categoryRule struct {
	Category model.Category
	Match    func(window string) bool
}

// categoryRules are tried in priority order against the upper-cased window.
// Port only wins when no STBD mention follows the last PORT mention —
// reports for the starboard side often still name the port engine earlier
// on the same page.
var categoryRules = []categoryRule{
	{model.CategoryPort, func(w string) bool {
		idx := strings.LastIndex(w, "PORT")
		return idx >= 0 && !strings.Contains(w[idx:], "STBD")
	}},
	{model.CategoryStbd, func(w string) bool {
		return strings.Contains(w, "STBD") || strings.Contains(w, "STARBOARD")
	}},
	{model.CategoryNo1, func(w string) bool {
		return strings.Contains(w, "NO 01") || strings.Contains(w, "NO.01") || strings.Contains(w, "NO. 01")
	}},
	{model.CategoryNo2, func(w string) bool {
		return strings.Contains(w, "NO 02") || strings.Contains(w, "NO.02") || strings.Contains(w, "NO. 02")
	}},
}

// Classify assigns exactly one category to a block by keyword lookback over
// the tokens preceding its first identifier.
func Classify(tokens []string, block SampleBlock) model.Category {
	start := block.Start - lookbackTokens
	if start < 0 {
		start = 0
	}
	window := strings.ToUpper(strings.Join(tokens[start:block.Start], " "))

	for _, rule := range categoryRules {
		if rule.Match(window) {
			return rule.Category
		}
	}
	return model.CategoryDefault
}
