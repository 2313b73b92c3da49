package app

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxTracedQueryBytes       = 512
	preparedBinaryResultParam = "disable_prepared_binary_result"
)

// catalogDSN is DB_URL prepared for the read-only catalog connection.
// Both URL and keyword/value DSNs are accepted.
type catalogDSN struct {
	conn   string
	name   string
	parsed *url.URL
}

func parseCatalogDSN(raw string, disablePreparedBinary bool) catalogDSN {
	raw = strings.TrimSpace(raw)
	dsn := catalogDSN{conn: raw}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		dsn.name = keywordDSNValue(raw, "dbname")
		if disablePreparedBinary && keywordDSNValue(raw, preparedBinaryResultParam) == "" {
			dsn.conn = raw + " " + preparedBinaryResultParam + "=yes"
		}
		return dsn
	}

	if disablePreparedBinary {
		query := parsed.Query()
		if query.Get(preparedBinaryResultParam) == "" {
			query.Set(preparedBinaryResultParam, "yes")
			parsed.RawQuery = query.Encode()
			dsn.conn = parsed.String()
		}
	}
	dsn.name = strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	dsn.parsed = parsed
	return dsn
}

// Redacted is safe to log.
func (d catalogDSN) Redacted() string {
	if d.parsed != nil {
		return d.parsed.Redacted()
	}

	fields := strings.Fields(d.conn)
	for i, field := range fields {
		if strings.HasPrefix(field, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

func keywordDSNValue(dsn, key string) string {
	prefix := key + "="
	for _, token := range strings.Fields(dsn) {
		if !strings.HasPrefix(token, prefix) {
			continue
		}
		return strings.Trim(strings.TrimPrefix(token, prefix), `"'`)
	}
	return ""
}

// traceQuery collapses whitespace so catalog queries read on one line in
// span attributes.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryBytes {
		return normalized
	}

	cut := maxTracedQueryBytes
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}
