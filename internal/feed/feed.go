package feed

// #region imports
import (
	"errors"
	"fmt"
	"log"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #endregion imports

// #region errors

// ErrNoTargets is returned when a seed sequence carries no mask or hole
// placeholder, leaving the model nothing to predict.
var ErrNoTargets = errors.New("no target prediction in seed sequence")

// ErrBatchMismatch is returned when a prediction batch does not line up with
// the open slots of the feed batch.
var ErrBatchMismatch = errors.New("prediction batch mismatch")

// #endregion errors

// #region config

// Config holds the feed-loop parameters.
type Config struct {
	SequenceLength int
	BatchSize      int

	// MaxSteps bounds the open→step loop so the batch terminates even when
	// the model never predicts end-hole. Zero means 2×SequenceLength.
	MaxSteps int
}

// DefaultConfig returns the feed defaults used by the sampling pipeline.
func DefaultConfig() Config {
	return Config{
		SequenceLength: 512,
		BatchSize:      8,
	}
}

func (c Config) maxSteps() int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return 2 * c.SequenceLength
}

// #endregion config

// #region batch

// Batch drives inference-time hole resolution for one sampling batch.
//
// Every slot starts from the same seed and evolves independently: each Step
// splices the model's predictions back into the slot buffers, re-opening a
// hole behind every prediction that is not the end-hole sentinel. A hole's
// length is therefore discovered at inference time, mirroring the
// variable-length training contract. The batch is not safe for concurrent
// use; run one Batch per goroutine.
type Batch struct {
	cfg     Config
	special vocab.Special

	slots [][]vocab.Token
	// histories[slot][target] is the append-only list of tokens resolved for
	// that target, in insertion order. Closed holes end with the end-hole
	// sentinel.
	histories  [][][]vocab.Token
	incomplete []bool
	steps      int
	cropped    int
}

// NewBatch initializes a feed batch from a seed sequence containing at least
// one mask or hole placeholder.
func NewBatch(seed []vocab.Token, cfg Config, special vocab.Special) (*Batch, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("empty seed: %w", ErrNoTargets)
	}
	numTargets := vocab.CountOpen(seed, special)
	if numTargets == 0 {
		return nil, ErrNoTargets
	}

	base := make([]vocab.Token, len(seed))
	copy(base, seed)
	base = vocab.PadTo(base, special.Pad, cfg.SequenceLength)
	base = base[:cfg.SequenceLength]

	slots := make([][]vocab.Token, cfg.BatchSize)
	histories := make([][][]vocab.Token, cfg.BatchSize)
	for i := range slots {
		slots[i] = make([]vocab.Token, len(base))
		copy(slots[i], base)
		histories[i] = make([][]vocab.Token, numTargets)
	}

	return &Batch{
		cfg:        cfg,
		special:    special,
		slots:      slots,
		histories:  histories,
		incomplete: make([]bool, cfg.BatchSize),
	}, nil
}

// #endregion batch

// #region open-state

// Slots returns the current working buffers, one per batch member.
func (b *Batch) Slots() [][]vocab.Token {
	return b.slots
}

// OpenPositions returns, per slot, the buffer indices of unresolved mask and
// hole placeholders in left-to-right order.
func (b *Batch) OpenPositions() [][]int {
	out := make([][]int, len(b.slots))
	for i, slot := range b.slots {
		for idx, t := range slot {
			if t == b.special.Mask || t == b.special.Hole {
				out[i] = append(out[i], idx)
			}
		}
	}
	return out
}

// Done reports whether every slot has closed all its targets, or the step
// cap was hit.
func (b *Batch) Done() bool {
	if b.steps >= b.cfg.maxSteps() {
		return true
	}
	for _, slot := range b.slots {
		if vocab.CountOpen(slot, b.special) > 0 {
			return false
		}
	}
	return true
}

// Incomplete reports whether the slot still held open placeholders when the
// step cap fired. Downstream ranking treats incomplete samples as
// lower-confidence.
func (b *Batch) Incomplete(slot int) bool {
	return b.incomplete[slot]
}

// Steps returns the number of Step calls applied so far.
func (b *Batch) Steps() int {
	return b.steps
}

// CroppedTokens returns the total number of tokens lost to sequence-length
// cropping across all steps.
func (b *Batch) CroppedTokens() int {
	return b.cropped
}

// #endregion open-state

// #region step

// Step splices one round of model predictions into the batch.
// predictions[slot] must hold exactly one token per open placeholder of that
// slot, in left-to-right order. Slots with no open placeholders take an empty
// (or nil) prediction list.
func (b *Batch) Step(predictions [][]vocab.Token) error {
	if len(predictions) != len(b.slots) {
		return fmt.Errorf("%w: %d prediction rows for %d slots",
			ErrBatchMismatch, len(predictions), len(b.slots))
	}
	open := b.OpenPositions()
	for i := range predictions {
		if len(predictions[i]) < len(open[i]) {
			return fmt.Errorf("%w: slot %d has %d open targets, %d predictions",
				ErrBatchMismatch, i, len(open[i]), len(predictions[i]))
		}
	}

	for slotIdx, slot := range b.slots {
		b.slots[slotIdx] = b.applySlot(slotIdx, slot, predictions[slotIdx])
	}
	b.steps++

	if b.steps >= b.cfg.maxSteps() {
		for i, slot := range b.slots {
			if vocab.CountOpen(slot, b.special) > 0 {
				b.incomplete[i] = true
				log.Printf("[FEED] slot %d hit step cap %d with %d open targets, flagging incomplete",
					i, b.cfg.maxSteps(), vocab.CountOpen(slot, b.special))
			}
		}
	}
	return nil
}

// applySlot rebuilds one slot buffer from the current buffer plus this
// round's predictions.
func (b *Batch) applySlot(slotIdx int, slot, preds []vocab.Token) []vocab.Token {
	hist := b.histories[slotIdx]
	out := make([]vocab.Token, 0, len(slot)+2)

	maskIdx := 0
	closedHoles := 0
	for _, token := range slot {
		switch token {
		case b.special.Mask:
			mt := preds[maskIdx]
			b.appendHistory(hist, maskIdx, &closedHoles, mt)
			maskIdx++
			out = append(out, mt)

		case b.special.Hole:
			mt := preds[maskIdx]
			b.appendHistory(hist, maskIdx, &closedHoles, mt)
			maskIdx++
			if mt != b.special.EndHole {
				// The hole stays open behind the accepted token until the
				// model predicts end-hole.
				out = append(out, mt, b.special.Hole)
			}

		default:
			out = append(out, token)
		}
	}

	if len(out) > b.cfg.SequenceLength {
		lost := len(out) - b.cfg.SequenceLength
		b.cropped += lost
		log.Printf("[FEED] cropped %d tokens from slot %d", lost, slotIdx)
	}
	out = vocab.PadTo(out, b.special.Pad, b.cfg.SequenceLength)
	return out[:b.cfg.SequenceLength]
}

// appendHistory routes a prediction to the history of its target. Targets
// whose history already ends with the end-hole sentinel are closed; their
// slots are skipped so later targets keep accumulating in insertion order.
func (b *Batch) appendHistory(hist [][]vocab.Token, maskIdx int, closedHoles *int, mt vocab.Token) {
	if len(hist[maskIdx]) > 0 {
		for maskIdx+*closedHoles < len(hist) &&
			len(hist[maskIdx+*closedHoles]) > 0 &&
			hist[maskIdx+*closedHoles][len(hist[maskIdx+*closedHoles])-1] == b.special.EndHole {
			*closedHoles++
		}
	}
	target := maskIdx + *closedHoles
	if target >= len(hist) {
		target = len(hist) - 1
	}
	hist[target] = append(hist[target], mt)
}

// #endregion step

// #region history

// History returns the per-target resolved token lists for one slot, in
// insertion order. Closed holes end with the end-hole sentinel.
func (b *Batch) History(slot int) [][]vocab.Token {
	return b.histories[slot]
}

// ResolvedTokens flattens one slot's histories into the generated token
// stream, dropping end-hole sentinels.
func (b *Batch) ResolvedTokens(slot int) []vocab.Token {
	var out []vocab.Token
	for _, h := range b.histories[slot] {
		for _, t := range h {
			if t != b.special.EndHole {
				out = append(out, t)
			}
		}
	}
	return out
}

// #endregion history
