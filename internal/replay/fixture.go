package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/feed"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture. It captures
// one recorded sampling round at the token level: the seed sequence, the
// special-token layout, and every prediction row the model returned, so the
// feed loop can be re-driven without an inference service.
type Fixture struct {
	Description     string                  `json:"description"`
	Seed            []vocab.Token           `json:"seed"`
	Special         FixtureSpecial          `json:"special"`
	Config          FixtureConfig           `json:"config"`
	Steps           []FixtureStep           `json:"steps"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureSpecial mirrors vocab.Special with JSON tags.
type FixtureSpecial struct {
	Pad       vocab.Token `json:"pad"`
	Mask      vocab.Token `json:"mask"`
	Hole      vocab.Token `json:"hole"`
	EndHole   vocab.Token `json:"end_hole"`
	Start     vocab.Token `json:"start"`
	End       vocab.Token `json:"end"`
	VocabSize int         `json:"vocab_size"`
}

// FixtureConfig mirrors feed.Config with JSON tags.
type FixtureConfig struct {
	SequenceLength int `json:"sequence_length"`
	BatchSize      int `json:"batch_size"`
	MaxSteps       int `json:"max_steps"`
}

// FixtureStep is one recorded prediction round: one token row per slot, one
// token per open placeholder of that slot.
type FixtureStep struct {
	Predictions [][]vocab.Token `json:"predictions"`
}

// FixtureExpectedResult captures the expected outcome for one slot.
type FixtureExpectedResult struct {
	Slot       int           `json:"slot"`
	Resolved   []vocab.Token `json:"resolved"`
	ClosedAt   int           `json:"closed_at"` // step index after which the slot had no open targets
	Incomplete bool          `json:"incomplete"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToSpecial converts a FixtureSpecial to the domain special-token layout.
func (s *FixtureSpecial) ToSpecial() vocab.Special {
	return vocab.Special{
		Pad:       s.Pad,
		Mask:      s.Mask,
		Hole:      s.Hole,
		EndHole:   s.EndHole,
		Start:     s.Start,
		End:       s.End,
		VocabSize: s.VocabSize,
	}
}

// ToFeedConfig converts a FixtureConfig to a feed.Config.
func (fc *FixtureConfig) ToFeedConfig() feed.Config {
	return feed.Config{
		SequenceLength: fc.SequenceLength,
		BatchSize:      fc.BatchSize,
		MaxSteps:       fc.MaxSteps,
	}
}

// #endregion fixture-loader
