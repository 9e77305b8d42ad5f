package report

import (
	"regexp"
	"sync"

	"github.com/fleetlab/ocmr/internal/model"
)

// A value-shaped token: an optional "<" (or its HTML escape) prefix, then
// digits/commas/periods with an optional "*" flag, or one of the literal
// not-available markers.
const valuePattern = `(?:(?:<|&lt;)\s*)?[\d,\.]+\*?|N/A|N/C|N/I|-`

var (
	valueRE = regexp.MustCompile(valuePattern)

	// First maximal run of whitespace-separated value-shaped tokens. The
	// run ends at the first thing that is not value-shaped, which in
	// practice is the next parameter keyword.
	valueRunRE = regexp.MustCompile(`((?:\s*(?:` + valuePattern + `))+)`)
)

// keywordRE caches compiled whole-word keyword patterns. The synonym lists
// are fixed so the map only ever holds a few dozen entries; the mutex keeps
// it safe when batch mode parses documents in parallel.
var (
	keywordMu sync.Mutex
	keywordRE = map[string]*regexp.Regexp{}
)

func keywordPattern(keyword string) *regexp.Regexp {
	keywordMu.Lock()
	defer keywordMu.Unlock()
	if re, ok := keywordRE[keyword]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	keywordRE[keyword] = re
	return re
}

// ExtractRow pulls one parameter's value row from the text following a
// block. Keywords are synonyms for the parameter, tried in order until one
// matches as a whole word. The row is the LAST `count` values of the first
// value run after the match: reports often prepend reference/limit columns
// before the actual sample readings, so the trailing values are assumed to
// align with the samples. That layout assumption is unverified outside the
// corpus this was built against; do not harden it without more documents.
//
// Too few values, or no keyword match, yields count nulls — a partial row
// is never returned.
func ExtractRow(searchText string, keywords []string, count int) []string {
	for _, keyword := range keywords {
		loc := keywordPattern(keyword).FindStringIndex(searchText)
		if loc == nil {
			continue
		}

		run := valueRunRE.FindString(searchText[loc[1]:])
		if run == "" {
			continue
		}

		vals := valueRE.FindAllString(run, -1)
		if len(vals) >= count {
			return vals[len(vals)-count:]
		}
	}

	return make([]string, count)
}

// NormalizeRow converts raw row tokens to tagged values
func NormalizeRow(row []string) []model.Value {
	vals := make([]model.Value, len(row))
	for i, tok := range row {
		vals[i] = model.ParseValue(tok)
	}
	return vals
}
