package app

import (
	"net/url"
	"strings"
)

// dbTarget is a resolved Postgres connection string plus what is safe to log.
type dbTarget struct {
	DSN      string
	Name     string
	Redacted string
}

func resolveDBTarget(raw string, disablePreparedBinaryResult bool) dbTarget {
	raw = strings.TrimSpace(raw)
	target := dbTarget{DSN: raw, Name: dbNameFromURL(raw), Redacted: "<dsn>"}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return target
	}

	if disablePreparedBinaryResult {
		query := parsed.Query()
		if query.Get("disable_prepared_binary_result") == "" {
			query.Set("disable_prepared_binary_result", "yes")
			parsed.RawQuery = query.Encode()
		}
		target.DSN = parsed.String()
	}
	target.Redacted = parsed.Redacted()

	return target
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	// key=value DSN form
	for _, token := range strings.Fields(trimmed) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(strings.TrimSpace(name), `"'`)
		}
	}

	return ""
}
