package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/oddsforge/matchdna/internal/config"
)

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := buildDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(databaseName(dsn)),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return db, nil
}

// buildDSN applies the prepared-binary workaround for poolers that mangle
// binary result rows. An explicit setting in the DSN always wins; both the
// URL and the keyword form of a lib/pq DSN are handled.
func buildDSN(raw string, disablePreparedBinary bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinary || strings.Contains(raw, "disable_prepared_binary_result=") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		// Keyword DSN: settings are space-separated key=value tokens.
		return raw + " disable_prepared_binary_result=yes"
	}

	query := parsed.Query()
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName extracts the database for the otelsql db.name attribute; an
// empty result just leaves the attribute unset.
func databaseName(dsn string) string {
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}

	for _, token := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(value, `'"`)
		}
	}
	return ""
}
