package logging

import "time"

// #region round-entry
// RoundEntry is a single row in the round_log table.
type RoundEntry struct {
	RoundID    string
	Benchmark  string
	SeedText   string
	DetailJSON string
	CreatedAt  time.Time
}

// #endregion round-entry

// #region round-record
// RoundRecord captures the complete inputs and outcome of one sampling round.
// Serialized as JSON into round_log.detail_json so a round can be audited
// without re-running inference.
type RoundRecord struct {
	RoundID   string `json:"round_id"`
	Benchmark string `json:"benchmark"`

	// Config active at decision time
	FeatureSpace   string `json:"feature_space"`
	TopK           int    `json:"top_k"`
	SequenceLength int    `json:"sequence_length"`
	BatchSize      int    `json:"batch_size"`

	// Feed outcome
	Steps         int `json:"steps"`
	Incomplete    int `json:"incomplete"`
	CroppedTokens int `json:"cropped_tokens"`

	// Ranking outcome
	Kept     int `json:"kept"`
	Skipped  int `json:"skipped"`
	Excluded int `json:"excluded"`
}

// #endregion round-record
