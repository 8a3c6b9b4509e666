package app

import (
	"fmt"
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	valuesTupleRegex     = regexp.MustCompile(`\([^()]*\)`)
	valuesListRegex      = regexp.MustCompile(`(?i)\bVALUES \([^()]*\)(?:, ?\([^()]*\))+`)
)

// formatDBQueryForTrace flattens whitespace, keeps only the first row of a
// multi-row VALUES list (team and match inserts carry up to one row per
// match) and caps the result at maxTracedQueryLength.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = valuesListRegex.ReplaceAllStringFunc(normalized, collapseValuesList)
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func collapseValuesList(list string) string {
	tuples := valuesTupleRegex.FindAllString(list, -1)
	return fmt.Sprintf("%s%s, ... /* %d rows */", list[:len("VALUES ")], tuples[0], len(tuples))
}
