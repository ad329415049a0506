package masking

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/lengths"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

func testSpecial() vocab.Special {
	return vocab.Special{
		Pad:       0,
		Mask:      1,
		Hole:      2,
		EndHole:   3,
		Start:     4,
		End:       5,
		VocabSize: 100,
	}
}

// fixedDist always yields the same hole length, taking the distribution's
// randomness out of a test so the expected arrays are exact.
type fixedDist struct {
	length   int
	observed []int
}

func (d *fixedDist) Sample(_ *rand.Rand) (int, error) { return d.length, nil }
func (d *fixedDist) Register(l int)                   { d.observed = append(d.observed, l) }
func (d *fixedDist) MaxLen() int                      { return d.length }
func (d *fixedDist) Export() []lengths.LengthCount    { return nil }

func realTokens(inst MaskedInstance) []HoleInstance {
	real := make([]HoleInstance, 0, inst.NumHoles)
	for _, h := range inst.Holes {
		if h.HoleLength >= 0 {
			real = append(real, h)
		}
	}
	return real
}

func countHoleTokens(ids []vocab.Token, special vocab.Special) int {
	n := 0
	for _, t := range ids {
		if t == special.Hole {
			n++
		}
	}
	return n
}

func TestHoleSequenceSingleToken(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{10, 0, 0}
	cfg := Config{MaxPredictions: 3, MaskProb: 0.4}
	dist := &fixedDist{length: 1}

	inst, err := HoleSequence(seq, true, cfg, special, dist, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []vocab.Token{special.Hole, 0, 0}
	if !reflect.DeepEqual(inst.InputIDs, wantIDs) {
		t.Fatalf("input ids = %v, want %v", inst.InputIDs, wantIDs)
	}
	wantMask := []int32{1, 0, 0}
	if !reflect.DeepEqual(inst.InputMask, wantMask) {
		t.Fatalf("input mask = %v, want %v", inst.InputMask, wantMask)
	}
	if inst.NumHoles != 1 {
		t.Fatalf("num holes = %d, want 1", inst.NumHoles)
	}
	if !inst.SeenInTraining {
		t.Fatal("training flag not carried through")
	}

	h := inst.Holes[0]
	if h.Position != 0 || h.Target != 10 || h.HoleLength != 1 || h.Weight != 1.0 {
		t.Fatalf("unexpected hole instance: %+v", h)
	}
	for _, pad := range inst.Holes[1:] {
		if pad.Position != 0 || pad.Target != special.Pad || pad.HoleLength != -1 || pad.Weight != 0 {
			t.Fatalf("unexpected sentinel entry: %+v", pad)
		}
	}
	if len(dist.observed) != 1 || dist.observed[0] != 1 {
		t.Fatalf("registered lengths = %v, want [1]", dist.observed)
	}
}

func TestHoleSequenceEmptyHole(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{10, 0, 0}
	cfg := Config{MaxPredictions: 3, MaskProb: 0.4}

	inst, err := HoleSequence(seq, false, cfg, special, &fixedDist{length: 0}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An empty hole inserts the placeholder without consuming a token; the
	// grown buffer is truncated back to the model length.
	wantIDs := []vocab.Token{special.Hole, 10, 0}
	if !reflect.DeepEqual(inst.InputIDs, wantIDs) {
		t.Fatalf("input ids = %v, want %v", inst.InputIDs, wantIDs)
	}
	if inst.NumHoles != 1 {
		t.Fatalf("num holes = %d, want 1", inst.NumHoles)
	}
	h := inst.Holes[0]
	if h.Position != 0 || h.Target != special.EndHole || h.HoleLength != 0 {
		t.Fatalf("unexpected hole instance: %+v", h)
	}
}

func TestHoleSequenceTruncationDropsHole(t *testing.T) {
	special := testSpecial()
	// Three real tokens, no padding slack. Three empty holes grow the buffer
	// to six tokens; truncation back to three drops the last hole and its
	// instance, whichever order the candidates were visited in.
	seq := []vocab.Token{10, 11, 12}
	cfg := Config{MaxPredictions: 3, MaskProb: 1.0}

	inst, err := HoleSequence(seq, false, cfg, special, &fixedDist{length: 0}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []vocab.Token{special.Hole, 10, special.Hole}
	if !reflect.DeepEqual(inst.InputIDs, wantIDs) {
		t.Fatalf("input ids = %v, want %v", inst.InputIDs, wantIDs)
	}
	if inst.NumHoles != 2 {
		t.Fatalf("num holes = %d, want 2 after truncation drop", inst.NumHoles)
	}
	real := realTokens(inst)
	if real[0].Position != 0 || real[1].Position != 2 {
		t.Fatalf("retained positions = %d,%d, want 0,2", real[0].Position, real[1].Position)
	}
	for _, h := range real {
		if h.Target != special.EndHole || h.HoleLength != 0 {
			t.Fatalf("unexpected retained instance: %+v", h)
		}
	}
}

func TestHoleSequenceScenario(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{5, 6, 7, 8, 9, 0, 0}
	cfg := Config{MaxPredictions: 3, MaskProb: 0.4}

	run := func() MaskedInstance {
		dist, err := lengths.NewUniform(2)
		if err != nil {
			t.Fatalf("uniform: %v", err)
		}
		inst, err := HoleSequence(seq, true, cfg, special, dist, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return inst
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different instances:\n%+v\n%+v", first, second)
	}

	if len(first.InputIDs) != len(seq) {
		t.Fatalf("input ids length = %d, want %d", len(first.InputIDs), len(seq))
	}
	// round(5 * 0.4) = 2 predictions budgeted; with hole lengths capped at 2
	// that places one or two holes, never more.
	real := realTokens(first)
	if len(real) < 1 || len(real) > 2 {
		t.Fatalf("placed %d holes, want 1 or 2", len(real))
	}
	total := 0
	for _, h := range real {
		if h.HoleLength < 0 || h.HoleLength > 2 {
			t.Fatalf("hole length %d outside [0,2]", h.HoleLength)
		}
		if h.HoleLength == 0 {
			total++
		} else {
			total += h.HoleLength
		}
	}
	if total < 2 {
		t.Fatalf("total predictions = %d, want >= 2", total)
	}
	assertPositionalInvariant(t, first, special)
}

func TestHoleSequencePositionalInvariant(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{10, 11, 12, 13, 14, 15, 16, 17, 0, 0, 0, 0}
	cfg := Config{MaxPredictions: 5, MaskProb: 0.5}

	for seed := int64(0); seed < 50; seed++ {
		dist, err := lengths.NewUniform(3)
		if err != nil {
			t.Fatalf("uniform: %v", err)
		}
		inst, err := HoleSequence(seq, false, cfg, special, dist, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		assertPositionalInvariant(t, inst, special)

		for i, h := range realTokens(inst) {
			if h.Position < 0 || h.Position >= len(seq) {
				t.Fatalf("seed %d: hole %d at position %d outside buffer", seed, i, h.Position)
			}
			if inst.InputIDs[h.Position] != special.Hole {
				t.Fatalf("seed %d: hole instance %d points at token %d, not the placeholder",
					seed, i, inst.InputIDs[h.Position])
			}
		}
	}
}

func assertPositionalInvariant(t *testing.T, inst MaskedInstance, special vocab.Special) {
	t.Helper()
	holeTokens := countHoleTokens(inst.InputIDs, special)
	if holeTokens != inst.NumHoles {
		t.Fatalf("%d hole tokens in buffer, %d retained instances", holeTokens, inst.NumHoles)
	}
	real := realTokens(inst)
	for i := 1; i < len(real); i++ {
		if real[i-1].Position >= real[i].Position {
			t.Fatalf("instances not strictly ascending: %d then %d", real[i-1].Position, real[i].Position)
		}
	}
}

func TestHoleSequenceInvalidInput(t *testing.T) {
	special := testSpecial()
	cfg := DefaultConfig()
	dist := &fixedDist{length: 1}
	rng := rand.New(rand.NewSource(1))

	if _, err := HoleSequence(nil, false, cfg, special, dist, rng); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("empty sequence: got %v, want ErrInvalidSequence", err)
	}
	allPad := []vocab.Token{0, 0, 0}
	if _, err := HoleSequence(allPad, false, cfg, special, dist, rng); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("all-pad sequence: got %v, want ErrInvalidSequence", err)
	}
	if _, err := MaskSequence(nil, false, cfg, special, rng); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("mask mode empty sequence: got %v, want ErrInvalidSequence", err)
	}
}

func TestMaskSequenceFixedFootprint(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{10, 11, 12, 13, 14, 15, 0, 0}
	cfg := Config{MaxPredictions: 4, MaskProb: 0.5}

	inst, err := MaskSequence(seq, true, cfg, special, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inst.InputIDs) != len(seq) {
		t.Fatalf("mask mode changed sequence length: %d", len(inst.InputIDs))
	}
	// round(6 * 0.5) = 3 targeted positions.
	real := realTokens(inst)
	if len(real) != 3 {
		t.Fatalf("targeted %d positions, want 3", len(real))
	}
	for _, h := range real {
		if h.HoleLength != 1 {
			t.Fatalf("mask mode recorded hole length %d, want 1", h.HoleLength)
		}
		if h.Target != seq[h.Position] {
			t.Fatalf("target %d at position %d, want original %d", h.Target, h.Position, seq[h.Position])
		}
		// Without RandomPlaced a targeted token is either masked or kept.
		got := inst.InputIDs[h.Position]
		if got != special.Mask && got != seq[h.Position] {
			t.Fatalf("position %d holds %d, want mask or original", h.Position, got)
		}
	}

	// Untargeted positions are untouched.
	targeted := make(map[int]bool, len(real))
	for _, h := range real {
		targeted[h.Position] = true
	}
	for i, tok := range inst.InputIDs {
		if !targeted[i] && tok != seq[i] {
			t.Fatalf("untargeted position %d changed from %d to %d", i, seq[i], tok)
		}
	}
}

func TestMaskSequenceRandomPlacedAvoidsMetaTokens(t *testing.T) {
	special := testSpecial()
	seq := []vocab.Token{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	cfg := Config{MaxPredictions: 10, MaskProb: 1.0, RandomPlaced: true}

	for seed := int64(0); seed < 20; seed++ {
		inst, err := MaskSequence(seq, false, cfg, special, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for i, tok := range inst.InputIDs {
			if tok == special.Mask || tok == seq[i] {
				continue
			}
			if special.IsMeta(tok) {
				t.Fatalf("seed %d: random replacement at %d is reserved token %d", seed, i, tok)
			}
		}
	}
}

func TestOffsetTable(t *testing.T) {
	tab := NewOffsetTable(6)
	for i := 0; i < 6; i++ {
		if tab.BufferIndex(i) != i {
			t.Fatalf("fresh table maps %d to %d", i, tab.BufferIndex(i))
		}
	}

	// A hole of length 3 at index 1 shifts later indices by 1-3 = -2.
	tab.Shift(1, -2)
	if tab.BufferIndex(1) != 1 {
		t.Fatalf("hole position itself moved to %d", tab.BufferIndex(1))
	}
	if tab.BufferIndex(4) != 2 {
		t.Fatalf("index 4 maps to %d, want 2", tab.BufferIndex(4))
	}

	// An empty hole at index 4 shifts later indices by +1.
	tab.Shift(4, 1)
	if tab.BufferIndex(5) != 4 {
		t.Fatalf("index 5 maps to %d, want 4", tab.BufferIndex(5))
	}
	if tab.BufferIndex(4) != 2 {
		t.Fatalf("shift leaked backward: index 4 maps to %d", tab.BufferIndex(4))
	}
}
