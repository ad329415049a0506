package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE round_log (
		round_id    TEXT NOT NULL,
		benchmark   TEXT NOT NULL,
		seed_text   TEXT,
		detail_json TEXT,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-round-tests
func TestLogRound_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := RoundEntry{
		RoundID:    "r1",
		Benchmark:  "bench-a",
		SeedText:   "kernel void A() { [HOLE] }",
		DetailJSON: `{"steps":4,"kept":8}`,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogRound(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM round_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var roundID, benchmark string
	db.QueryRow("SELECT round_id, benchmark FROM round_log").Scan(&roundID, &benchmark)
	if roundID != "r1" {
		t.Errorf("expected round_id 'r1', got %q", roundID)
	}
	if benchmark != "bench-a" {
		t.Errorf("expected benchmark 'bench-a', got %q", benchmark)
	}
}

func TestLogRound_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := RoundEntry{
		RoundID:   "r2",
		Benchmark: "bench-b",
	}

	before := time.Now().UTC()
	if err := LogRound(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM round_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogRound_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := RoundEntry{
		RoundID:   "r3",
		Benchmark: "bench-c",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogRound(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var seedText, detailJSON sql.NullString
	db.QueryRow("SELECT seed_text, detail_json FROM round_log").Scan(&seedText, &detailJSON)
	if seedText.Valid {
		t.Error("expected NULL seed_text for empty string")
	}
	if detailJSON.Valid {
		t.Error("expected NULL detail_json for empty string")
	}
}

func TestLogRound_MissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := LogRound(db, RoundEntry{RoundID: "r4", Benchmark: "bench-d"}); err == nil {
		t.Fatal("expected error without round_log table")
	}
}

// #endregion log-round-tests
