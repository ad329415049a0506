package corpus

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/committee"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/lengths"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/ranking"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sequences (
	sequence_id   TEXT PRIMARY KEY,
	tokens        BLOB NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
	candidate_id  TEXT PRIMARY KEY,
	round_id      TEXT NOT NULL,
	benchmark     TEXT NOT NULL,
	source        TEXT NOT NULL,
	features_json TEXT NOT NULL,
	score         REAL NOT NULL,
	incomplete    INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidates_round
ON candidates(round_id, score);

CREATE TABLE IF NOT EXISTS committee_votes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	sample_id     TEXT NOT NULL,
	member_id     TEXT NOT NULL,
	label         INTEGER NOT NULL,
	entropy       REAL NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS hole_lengths (
	set_name      TEXT NOT NULL,
	length        INTEGER NOT NULL,
	count         INTEGER NOT NULL,
	PRIMARY KEY (set_name, length)
);

CREATE TABLE IF NOT EXISTS round_log (
	round_id      TEXT NOT NULL,
	benchmark     TEXT NOT NULL,
	seed_text     TEXT,
	detail_json   TEXT,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct
// Store manages the sampling corpus in SQLite: tokenized sequences, ranked
// candidates, committee votes, and the hole-length telemetry table.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion close

// #region sequences
// AddSequences stores a batch of tokenized sequences.
func (s *Store) AddSequences(seqs [][]vocab.Token) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, seq := range seqs {
		_, err := tx.Exec(
			`INSERT INTO sequences (sequence_id, tokens, created_at) VALUES (?, ?, ?)`,
			uuid.New().String(), encodeTokens(seq), now,
		)
		if err != nil {
			return fmt.Errorf("insert sequence: %w", err)
		}
	}
	return tx.Commit()
}

// Sequences returns up to limit stored sequences in insertion order.
// limit <= 0 means all.
func (s *Store) Sequences(limit int) ([][]vocab.Token, error) {
	q := `SELECT tokens FROM sequences ORDER BY rowid`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("query sequences: %w", err)
	}
	defer rows.Close()

	var out [][]vocab.Token
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		out = append(out, decodeTokens(blob))
	}
	return out, rows.Err()
}
// #endregion sequences

// #region candidates
// AddCandidates persists one sampling round's ranked candidates.
func (s *Store) AddCandidates(roundID, benchmark string, cands []ranking.Candidate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, c := range cands {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		featJSON, err := json.Marshal(c.Features)
		if err != nil {
			return fmt.Errorf("marshal features: %w", err)
		}
		incomplete := 0
		if c.Incomplete {
			incomplete = 1
		}
		_, err = tx.Exec(
			`INSERT INTO candidates
			 (candidate_id, round_id, benchmark, source, features_json, score, incomplete, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, roundID, benchmark, c.Source, string(featJSON), c.Score, incomplete, now,
		)
		if err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
	}
	return tx.Commit()
}

// RoundCandidates returns a round's candidates ascending by score.
func (s *Store) RoundCandidates(roundID string) ([]ranking.Candidate, error) {
	rows, err := s.db.Query(
		`SELECT candidate_id, source, features_json, score, incomplete
		 FROM candidates WHERE round_id = ? ORDER BY incomplete, score`, roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var out []ranking.Candidate
	for rows.Next() {
		var c ranking.Candidate
		var featJSON string
		var incomplete int
		if err := rows.Scan(&c.ID, &c.Source, &featJSON, &c.Score, &incomplete); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		if err := json.Unmarshal([]byte(featJSON), &c.Features); err != nil {
			return nil, fmt.Errorf("unmarshal features: %w", err)
		}
		c.Incomplete = incomplete != 0
		out = append(out, c)
	}
	return out, rows.Err()
}
// #endregion candidates

// #region votes
// RecordVote persists one committee vote with its computed entropy for audit.
func (s *Store) RecordVote(sampleID string, vote committee.Vote, entropy float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for member, label := range vote {
		_, err := tx.Exec(
			`INSERT INTO committee_votes (sample_id, member_id, label, entropy, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			sampleID, member, int64(label), entropy, now,
		)
		if err != nil {
			return fmt.Errorf("insert vote: %w", err)
		}
	}
	return tx.Commit()
}
// #endregion votes

// #region telemetry
// SaveLengthCounts merges a distribution's observed-length registry into the
// telemetry table under setName.
func (s *Store) SaveLengthCounts(setName string, counts []lengths.LengthCount) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, lc := range counts {
		_, err := tx.Exec(
			`INSERT INTO hole_lengths (set_name, length, count) VALUES (?, ?, ?)
			 ON CONFLICT(set_name, length) DO UPDATE SET count = count + excluded.count`,
			setName, lc.Length, lc.Count,
		)
		if err != nil {
			return fmt.Errorf("upsert length count: %w", err)
		}
	}
	return tx.Commit()
}

// LengthCounts returns the (length, count) pairs recorded under setName,
// sorted by length, for plotting by external tooling.
func (s *Store) LengthCounts(setName string) ([]lengths.LengthCount, error) {
	rows, err := s.db.Query(
		`SELECT length, count FROM hole_lengths WHERE set_name = ? ORDER BY length`, setName,
	)
	if err != nil {
		return nil, fmt.Errorf("query length counts: %w", err)
	}
	defer rows.Close()

	var out []lengths.LengthCount
	for rows.Next() {
		var lc lengths.LengthCount
		if err := rows.Scan(&lc.Length, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan length count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}
// #endregion telemetry

// #region token-encoding
func encodeTokens(seq []vocab.Token) []byte {
	buf := make([]byte, len(seq)*4)
	for i, t := range seq {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(t))
	}
	return buf
}

func decodeTokens(b []byte) []vocab.Token {
	out := make([]vocab.Token, len(b)/4)
	for i := range out {
		out[i] = vocab.Token(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}
// #endregion token-encoding
