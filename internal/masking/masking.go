package masking

// #region imports
import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/lengths"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #endregion imports

// #region errors

// ErrInvalidSequence is returned for sequences that cannot be masked:
// zero length, or no non-pad content. The caller skips the sequence; masking
// never silently returns an unmasked instance.
var ErrInvalidSequence = errors.New("invalid input sequence")

// #endregion errors

// #region hole-sequence

// HoleSequence inserts variable-length holes into one fixed-length sequence.
//
// It is a pure function: all dependencies (distribution, special tokens, rng)
// are parameters, so a worker pool can call it across independent sequences
// with one seeded rng per call and get per-sequence deterministic output.
// The rng is consumed first by the candidate shuffle, then by one length draw
// per placed hole; that order is part of the reproducibility contract.
func HoleSequence(
	seq []vocab.Token,
	trainSet bool,
	cfg Config,
	special vocab.Special,
	dist lengths.Distribution,
	rng *rand.Rand,
) (MaskedInstance, error) {
	actualLength, err := validate(seq, special)
	if err != nil {
		return MaskedInstance{}, err
	}

	candidates := shuffledIndices(actualLength, rng)
	holesToPredict := predictionBudget(actualLength, cfg)

	// Growable working buffer; starts as a copy of the full padded sequence.
	inputIDs := make([]vocab.Token, len(seq))
	copy(inputIDs, seq)

	offsets := NewOffsetTable(len(seq))
	visited := make(map[int]bool, holesToPredict)
	var holes []HoleInstance
	totalPredictions := 0

	for _, pos := range candidates {
		if totalPredictions >= holesToPredict {
			break
		}
		if visited[pos] {
			continue
		}
		idx := offsets.BufferIndex(pos)
		if idx > len(inputIDs) {
			// Already shifted past the buffer end; would be cropped away.
			continue
		}

		holeLength, err := dist.Sample(rng)
		if err != nil {
			return MaskedInstance{}, fmt.Errorf("hole length at position %d: %w", pos, err)
		}
		// The hole may not run past the buffer end.
		if holeLength > len(inputIDs)-idx {
			holeLength = len(inputIDs) - idx
		}
		// Nor may it swallow an already-placed hole; truncate at the first
		// collision scanning forward.
		for i := 0; i < holeLength; i++ {
			if inputIDs[idx+i] == special.Hole {
				holeLength = i
				break
			}
		}
		dist.Register(holeLength)

		// Target is the first covered token; an empty hole targets the
		// end-hole sentinel.
		target := special.EndHole
		if holeLength > 0 {
			target = inputIDs[idx]
		}

		inputIDs = splice(inputIDs, idx, holeLength, special.Hole)
		holes = append(holes, HoleInstance{
			Position:   pos, // original index until reindex below
			Target:     target,
			HoleLength: holeLength,
			Weight:     1.0,
		})

		offsets.Shift(pos, 1-holeLength)
		// An empty hole still consumes one prediction slot.
		if holeLength > 0 {
			totalPredictions += holeLength
		} else {
			totalPredictions++
		}
		for i := pos; i < pos+holeLength; i++ {
			visited[i] = true
		}
	}

	// Final offsets are now known; move every instance to its buffer position.
	for i := range holes {
		holes[i].Position = offsets.BufferIndex(holes[i].Position)
	}
	sort.Slice(holes, func(i, j int) bool { return holes[i].Position < holes[j].Position })

	return assemble(seq, inputIDs, holes, trainSet, cfg, special), nil
}

// #endregion hole-sequence

// #region mask-sequence

// MaskSequence is the fixed-footprint masking mode: single-token masks, no
// buffer growth, no offset tracking. With RandomPlaced set it applies the
// BERT 80/10/10 replacement scheme, else plain 80% mask / 20% keep.
func MaskSequence(
	seq []vocab.Token,
	trainSet bool,
	cfg Config,
	special vocab.Special,
	rng *rand.Rand,
) (MaskedInstance, error) {
	actualLength, err := validate(seq, special)
	if err != nil {
		return MaskedInstance{}, err
	}

	candidates := shuffledIndices(actualLength, rng)
	masksToPredict := predictionBudget(actualLength, cfg)

	inputIDs := make([]vocab.Token, len(seq))
	copy(inputIDs, seq)

	var holes []HoleInstance
	for _, pos := range candidates {
		if len(holes) >= masksToPredict {
			break
		}

		if cfg.RandomPlaced {
			switch {
			case rng.Float64() < 0.8:
				inputIDs[pos] = special.Mask
			case rng.Float64() < 0.5:
				// keep the original token
			default:
				inputIDs[pos] = randomNonMetaToken(special, rng)
			}
		} else if rng.Float64() < 0.8 {
			inputIDs[pos] = special.Mask
		}

		holes = append(holes, HoleInstance{
			Position:   pos,
			Target:     seq[pos],
			HoleLength: 1,
			Weight:     1.0,
		})
	}

	sort.Slice(holes, func(i, j int) bool { return holes[i].Position < holes[j].Position })

	return assemble(seq, inputIDs, holes, trainSet, cfg, special), nil
}

// randomNonMetaToken draws a vocabulary token that is not a reserved one.
func randomNonMetaToken(special vocab.Special, rng *rand.Rand) vocab.Token {
	for {
		t := vocab.Token(rng.Intn(special.VocabSize))
		if !special.IsMeta(t) {
			return t
		}
	}
}

// #endregion mask-sequence

// #region assembly

// assemble re-pads the buffer to the model length, drops holes cropped by
// truncation, builds the input mask, and pads the instance list.
func assemble(
	seq, inputIDs []vocab.Token,
	holes []HoleInstance,
	trainSet bool,
	cfg Config,
	special vocab.Special,
) MaskedInstance {
	inputIDs = vocab.PadTo(inputIDs, special.Pad, len(seq))
	// Holes can shrink or grow the buffer; anything beyond the model's
	// sequence length is dropped, together with any instance pointing there.
	inputIDs = inputIDs[:len(seq)]

	retained := holes[:0]
	for _, h := range holes {
		if h.Position < len(seq) {
			retained = append(retained, h)
		}
	}
	numHoles := len(retained)

	padded := make([]HoleInstance, 0, cfg.MaxPredictions)
	padded = append(padded, retained...)
	for len(padded) < cfg.MaxPredictions {
		padded = append(padded, HoleInstance{
			Position:   0,
			Target:     special.Pad,
			HoleLength: -1,
			Weight:     0.0,
		})
	}

	original := make([]vocab.Token, len(seq))
	copy(original, seq)

	return MaskedInstance{
		SeenInTraining: trainSet,
		Original:       original,
		InputIDs:       inputIDs,
		InputMask:      vocab.InputMask(inputIDs, special.Pad),
		Holes:          padded,
		NumHoles:       numHoles,
	}
}

// #endregion assembly

// #region helpers

// validate rejects sequences that cannot be masked and returns the length of
// the real content.
func validate(seq []vocab.Token, special vocab.Special) (int, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("empty sequence: %w", ErrInvalidSequence)
	}
	actualLength := vocab.ActualLength(seq, special.Pad)
	if actualLength == 0 {
		return 0, fmt.Errorf("sequence contains no non-pad tokens: %w", ErrInvalidSequence)
	}
	return actualLength, nil
}

// shuffledIndices returns [0, n) in rng-shuffled order.
func shuffledIndices(n int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}

// predictionBudget caps targeted tokens at MaxPredictions, with a floor of 1.
func predictionBudget(actualLength int, cfg Config) int {
	n := int(float64(actualLength)*cfg.MaskProb + 0.5)
	if n < 1 {
		n = 1
	}
	if n > cfg.MaxPredictions {
		n = cfg.MaxPredictions
	}
	return n
}

// splice replaces inputIDs[idx : idx+width] with a single replacement token.
func splice(inputIDs []vocab.Token, idx, width int, replacement vocab.Token) []vocab.Token {
	out := make([]vocab.Token, 0, len(inputIDs)+1-width)
	out = append(out, inputIDs[:idx]...)
	out = append(out, replacement)
	out = append(out, inputIDs[idx+width:]...)
	return out
}

// #endregion helpers
