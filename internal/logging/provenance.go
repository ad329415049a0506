package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-round
// LogRound writes a provenance entry to the round_log table.
func LogRound(db *sql.DB, entry RoundEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO round_log (round_id, benchmark, seed_text, detail_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.RoundID,
		entry.Benchmark,
		nullIfEmpty(entry.SeedText),
		nullIfEmpty(entry.DetailJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log round: %w", err)
	}
	return nil
}
// #endregion log-round

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
