package report

import "strings"

// SampleBlock is a maximal run of consecutive token positions that each look
// like a sample identifier. Blocks are created in one linear scan over the
// token stream and never merged or mutated afterwards.
type SampleBlock struct {
	IDs   []string // identifier tokens, in document order
	Start int      // token index of the first identifier
	End   int      // token index of the last identifier
}

// Count returns the number of samples in the block
func (b SampleBlock) Count() int {
	return len(b.IDs)
}

// Tokenize splits normalized text on whitespace. Token indices are the
// coordinate system for block detection and category lookback.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// isSampleToken reports whether a token looks like a sample identifier.
// Identifiers carry the "S/I" marker and an "M"-prefixed numeric suffix;
// containment is checked case-sensitively. This is a heuristic, not a
// grammar — stray matches are an accepted limitation.
func isSampleToken(tok string) bool {
	return strings.Contains(tok, "S/I") && strings.Contains(tok, "M")
}

// FindBlocks scans the token stream once and groups consecutive sample
// identifier positions into blocks. Any non-qualifying token ends the
// current block; the next qualifying token starts a new one.
func FindBlocks(tokens []string) []SampleBlock {
	var blocks []SampleBlock
	var current *SampleBlock

	for i, tok := range tokens {
		if !isSampleToken(tok) {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &SampleBlock{Start: i}
		}
		current.IDs = append(current.IDs, tok)
		current.End = i
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}
