package corpus

import (
	"log"
	"math/rand"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

// #region shape-config
// ShapeConfig controls how raw tokenized kernels become fixed-length
// training sequences.
type ShapeConfig struct {
	SequenceLength int
	UseStartEnd    bool // wrap each kernel with start/end tokens
	DupeFactor     int  // clone each datapoint this many times (min 1)
	Shuffle        bool
}

// #endregion shape-config

// #region shape
// ShapeCorpus rejects kernels longer than the sequence length (accounting
// for start/end tokens when used), wraps and pads the rest, duplicates each
// datapoint DupeFactor times, and optionally shuffles. Rejected sequences
// are dropped, not truncated.
func ShapeCorpus(raw [][]vocab.Token, cfg ShapeConfig, special vocab.Special, rng *rand.Rand) [][]vocab.Token {
	budget := cfg.SequenceLength
	if cfg.UseStartEnd {
		budget -= 2
	}
	dupe := cfg.DupeFactor
	if dupe < 1 {
		dupe = 1
	}

	shaped := make([][]vocab.Token, 0, len(raw)*dupe)
	rejected := 0
	for _, kernel := range raw {
		if len(kernel) > budget {
			rejected++
			continue
		}
		seq := kernel
		if cfg.UseStartEnd {
			seq = vocab.WrapStartEnd(seq, special)
		}
		padded := make([]vocab.Token, 0, cfg.SequenceLength)
		padded = append(padded, seq...)
		padded = vocab.PadTo(padded, special.Pad, cfg.SequenceLength)

		for i := 0; i < dupe; i++ {
			dup := make([]vocab.Token, len(padded))
			copy(dup, padded)
			shaped = append(shaped, dup)
		}
	}

	if cfg.Shuffle {
		rng.Shuffle(len(shaped), func(i, j int) { shaped[i], shaped[j] = shaped[j], shaped[i] })
	}

	if rejected > 0 {
		log.Printf("[CORPUS] %d kernels rejected (larger than sequence length)", rejected)
	}
	log.Printf("[CORPUS] shaped %d sequences (%d kernels x dupe factor %d)",
		len(shaped), (len(raw) - rejected), dupe)
	return shaped
}

// #endregion shape
