package replay

import (
	"reflect"
	"strings"
	"testing"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/feed"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

func testSpecial() vocab.Special {
	return vocab.Special{Pad: 0, Mask: 1, Hole: 2, EndHole: 3, Start: 4, End: 5, VocabSize: 100}
}

func testFeedConfig() feed.Config {
	return feed.Config{SequenceLength: 8, BatchSize: 2}
}

func TestReplayTwoSlots(t *testing.T) {
	special := testSpecial()
	seed := []vocab.Token{10, special.Hole, 11}
	steps := []FixtureStep{
		{Predictions: [][]vocab.Token{{special.EndHole}, {20}}},
		{Predictions: [][]vocab.Token{nil, {21}}},
		{Predictions: [][]vocab.Token{nil, {special.EndHole}}},
	}

	stepResults, slots, err := Replay(seed, steps, testFeedConfig(), special)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stepResults) != 3 {
		t.Fatalf("replayed %d steps, want 3", len(stepResults))
	}
	if !reflect.DeepEqual(stepResults[0].Open, []int{0, 1}) {
		t.Fatalf("open counts after step 1 = %v, want [0 1]", stepResults[0].Open)
	}

	if slots[0].ClosedAt != 0 || slots[1].ClosedAt != 2 {
		t.Fatalf("closed at %d,%d; want 0,2", slots[0].ClosedAt, slots[1].ClosedAt)
	}
	if slots[0].Resolved != nil {
		t.Fatalf("slot 0 resolved = %v, want none", slots[0].Resolved)
	}
	if !reflect.DeepEqual(slots[1].Resolved, []vocab.Token{20, 21}) {
		t.Fatalf("slot 1 resolved = %v, want [20 21]", slots[1].Resolved)
	}
	if slots[0].Incomplete || slots[1].Incomplete {
		t.Fatal("no slot should be incomplete")
	}
}

func TestReplayExhaustedFixture(t *testing.T) {
	special := testSpecial()
	seed := []vocab.Token{10, special.Hole, 11}
	// The recording ends while slot 1 still holds an open hole.
	steps := []FixtureStep{
		{Predictions: [][]vocab.Token{{special.EndHole}, {20}}},
	}

	_, _, err := Replay(seed, steps, testFeedConfig(), special)
	if err == nil || !strings.Contains(err.Error(), "exhausted") {
		t.Fatalf("got %v, want fixture-exhausted error", err)
	}
}

func TestVerify(t *testing.T) {
	slots := []SlotResult{
		{Slot: 0, Resolved: nil, ClosedAt: 0},
		{Slot: 1, Resolved: []vocab.Token{20, 21}, ClosedAt: 2},
	}
	expected := []FixtureExpectedResult{
		{Slot: 0, ClosedAt: 0},
		{Slot: 1, Resolved: []vocab.Token{20, 21}, ClosedAt: 2},
	}
	if mismatch := Verify(slots, expected); mismatch != "" {
		t.Fatalf("unexpected mismatch: %s", mismatch)
	}

	expected[1].ClosedAt = 1
	if mismatch := Verify(slots, expected); mismatch == "" {
		t.Fatal("expected a closure mismatch")
	}

	badSlot := []FixtureExpectedResult{{Slot: 5}}
	if mismatch := Verify(slots, badSlot); mismatch == "" {
		t.Fatal("expected out-of-range slot mismatch")
	}
}

func TestSummarize(t *testing.T) {
	steps := []StepResult{{Step: 0}, {Step: 1}}
	slots := []SlotResult{
		{Slot: 0},
		{Slot: 1, Incomplete: true},
	}
	s := Summarize(steps, slots, 3)
	if s.TotalSteps != 2 || s.Closed != 1 || s.Incomplete != 1 || s.CroppedTokens != 3 {
		t.Fatalf("summary = %+v", s)
	}
}
