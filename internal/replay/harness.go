package replay

import (
	"fmt"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/feed"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #region types

// StepResult captures the batch state after one replayed prediction round.
type StepResult struct {
	Step int
	// Open holds the per-slot count of unresolved placeholders after the
	// step was applied.
	Open []int
}

// SlotResult is the final outcome for one slot after the whole fixture ran.
type SlotResult struct {
	Slot       int
	Resolved   []vocab.Token // generated token stream, end-hole dropped
	Buffer     []vocab.Token // final padded working buffer
	ClosedAt   int           // step index after which the slot had no open targets; -1 if never
	Incomplete bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps    int
	Closed        int
	Incomplete    int
	CroppedTokens int
}

// #endregion types

// #region replay

// Replay re-drives the feed loop from a seed and recorded prediction rounds.
// Operates entirely in-memory. Returns per-step and per-slot results; a
// fixture that runs out of recorded steps before the batch closes is an
// error, since the recording is then inconsistent with the feed semantics.
func Replay(seed []vocab.Token, steps []FixtureStep, cfg feed.Config, special vocab.Special) ([]StepResult, []SlotResult, error) {
	batch, err := feed.NewBatch(seed, cfg, special)
	if err != nil {
		return nil, nil, fmt.Errorf("init batch: %w", err)
	}

	closedAt := make([]int, cfg.BatchSize)
	for i := range closedAt {
		closedAt[i] = -1
	}

	stepResults := make([]StepResult, 0, len(steps))
	for stepIdx, step := range steps {
		if batch.Done() {
			break
		}
		if err := batch.Step(step.Predictions); err != nil {
			return nil, nil, fmt.Errorf("replay step %d: %w", stepIdx, err)
		}

		open := make([]int, len(batch.Slots()))
		for slot, buf := range batch.Slots() {
			open[slot] = vocab.CountOpen(buf, special)
			if open[slot] == 0 && closedAt[slot] == -1 {
				closedAt[slot] = stepIdx
			}
		}
		stepResults = append(stepResults, StepResult{Step: stepIdx, Open: open})
	}

	if !batch.Done() {
		return nil, nil, fmt.Errorf("fixture exhausted after %d steps with open targets remaining", len(steps))
	}

	slotResults := make([]SlotResult, len(batch.Slots()))
	for slot := range batch.Slots() {
		slotResults[slot] = SlotResult{
			Slot:       slot,
			Resolved:   batch.ResolvedTokens(slot),
			Buffer:     batch.Slots()[slot],
			ClosedAt:   closedAt[slot],
			Incomplete: batch.Incomplete(slot),
		}
	}
	return stepResults, slotResults, nil
}

// Verify checks slot results against a fixture's expected results. Returns a
// description of the first mismatch, or "" when everything matches.
func Verify(slots []SlotResult, expected []FixtureExpectedResult) string {
	for _, want := range expected {
		if want.Slot < 0 || want.Slot >= len(slots) {
			return fmt.Sprintf("expected result references slot %d out of %d", want.Slot, len(slots))
		}
		got := slots[want.Slot]
		if got.Incomplete != want.Incomplete {
			return fmt.Sprintf("slot %d: incomplete = %v, want %v", want.Slot, got.Incomplete, want.Incomplete)
		}
		if got.ClosedAt != want.ClosedAt {
			return fmt.Sprintf("slot %d: closed at step %d, want %d", want.Slot, got.ClosedAt, want.ClosedAt)
		}
		if !tokensEqual(got.Resolved, want.Resolved) {
			return fmt.Sprintf("slot %d: resolved %v, want %v", want.Slot, got.Resolved, want.Resolved)
		}
	}
	return ""
}

// Summarize computes aggregate stats from replay results.
func Summarize(stepResults []StepResult, slots []SlotResult, cropped int) Summary {
	s := Summary{TotalSteps: len(stepResults), CroppedTokens: cropped}
	for _, slot := range slots {
		if slot.Incomplete {
			s.Incomplete++
		} else {
			s.Closed++
		}
	}
	return s
}

func tokensEqual(a, b []vocab.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion replay
