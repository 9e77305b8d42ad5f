// Package report implements the oil change monitoring report (OCMR) parser:
// it segments the flattened text of one lab report into sample blocks,
// classifies each block by equipment side, and extracts the aligned value
// rows for the tracked chemistry and wear-metal parameters.
//
// The source reports have no grammar. Everything here is heuristic
// best-effort text matching, and false positives/negatives are an accepted
// limitation rather than an error condition.
package report

import "regexp"

var (
	// Control characters used as cell separators by the upstream document
	// converter ("\x07" for table cells, among others). Tab, LF and CR are
	// real whitespace and must survive.
	controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)

	// Sample identifiers come out of table cells torn apart: the "S/I"
	// prefix and the "M<digits>" suffix end up separated by whitespace or
	// lose their dash entirely.
	splitIDDash  = regexp.MustCompile(`(?i)S/I\s*-\s*M`)
	splitIDSpace = regexp.MustCompile(`(?i)S/I\s+M`)
)

// Normalize scrubs converter control characters and re-joins torn sample
// identifiers into the canonical "S/I-M..." form. Purely functional.
func Normalize(text string) string {
	text = controlChars.ReplaceAllString(text, " ")
	text = splitIDDash.ReplaceAllString(text, "S/I-M")
	text = splitIDSpace.ReplaceAllString(text, "S/I-M")
	return text
}
