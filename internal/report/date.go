package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCreatedAt is used when no sampling date can be located
const DefaultCreatedAt = "2025-01-01 10:00:00"

// headerLen bounds the date search to the presumed header region
const headerLen = 1000

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var (
	dateLabel = regexp.MustCompile(`(?i)(Date\s*(?:of\s+Sampling|sampling)?\s*[:\-]?)`)

	// "11 Jul 25" or "11 Jul 2025"
	monthDate = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{2,4})\b`)

	// "11.07.2025" or "11.7.25"
	dottedDate = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{2,4})\b`)
)

// ExtractCreatedAt locates the report-level sampling date in the header of
// normalized text and renders it as "YYYY-MM-DD 10:00:00". The strategy, in
// priority order: a labeled date field, any header date with year >= 2023,
// then the fixed default. This is document-level metadata — the same value
// is stamped on every record produced from the document.
func ExtractCreatedAt(text string) string {
	header := text
	if len(header) > headerLen {
		header = header[:headerLen]
	}

	if loc := dateLabel.FindStringIndex(header); loc != nil {
		post := header[loc[1]:]
		if m := monthDate.FindStringSubmatch(post); m != nil {
			return formatMonthDate(m[1], m[2], m[3])
		}
		if m := dottedDate.FindStringSubmatch(post); m != nil {
			return fmt.Sprintf("%s-%s-%s 10:00:00", expandYear(m[3]), pad2(m[2]), pad2(m[1]))
		}
	}

	// No labeled date: accept the first recent-looking date in the header
	for _, m := range monthDate.FindAllStringSubmatch(header, -1) {
		year, err := strconv.Atoi(expandYear(m[3]))
		if err == nil && year >= 2023 {
			return formatMonthDate(m[1], m[2], m[3])
		}
	}

	return DefaultCreatedAt
}

func formatMonthDate(day, month, year string) string {
	m, ok := monthNumbers[strings.ToLower(month)[:3]]
	if !ok {
		m = "01"
	}
	return fmt.Sprintf("%s-%s-%s 10:00:00", expandYear(year), m, pad2(day))
}

func expandYear(year string) string {
	if len(year) == 2 {
		return "20" + year
	}
	return year
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
