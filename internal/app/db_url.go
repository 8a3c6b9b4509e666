package app

import (
	"net/url"
	"strings"

	"github.com/riskibarqy/premier-league-stats/internal/platform/migration"
)

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	return migration.NormalizeDBURL(strings.TrimSpace(raw), disablePreparedBinaryResult)
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}

	return ""
}
