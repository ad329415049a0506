package committee

// #region imports
import (
	"math"
	"sort"
)

// #endregion imports

// #region types

// Label is one committee member's predicted label for an input.
type Label int32

// Vote maps member IDs to their predicted label for one input.
type Vote map[string]Label

// Sample pairs an input with its committee vote and computed entropy.
// Higher entropy means higher disagreement and higher sampling priority.
type Sample struct {
	ID      string
	Vote    Vote
	Entropy float64
}

// #endregion types

// #region entropy

// Entropy computes the Shannon entropy of a label multiset in natural log
// base. Zero or one labels, or a single distinct label, yield 0. The result
// is order-independent.
func Entropy(labels []Label) float64 {
	return EntropyBase(labels, math.E)
}

// EntropyBase computes entropy with an explicit logarithm base.
func EntropyBase(labels []Label, base float64) float64 {
	if len(labels) <= 1 {
		return 0
	}

	counts := make(map[Label]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	if len(counts) <= 1 {
		return 0
	}

	n := float64(len(labels))
	logBase := math.Log(base)
	var h float64
	for _, c := range counts {
		p := float64(c) / n
		h -= p * math.Log(p) / logBase
	}
	return h
}

// #endregion entropy

// #region ranking

// Score fills in each sample's entropy from its vote.
func Score(samples []Sample) []Sample {
	for i := range samples {
		labels := make([]Label, 0, len(samples[i].Vote))
		for _, l := range samples[i].Vote {
			labels = append(labels, l)
		}
		samples[i].Entropy = Entropy(labels)
	}
	return samples
}

// RankByDisagreement sorts samples by entropy descending, so the inputs the
// committee most disagrees on come first for targeted re-sampling.
func RankByDisagreement(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Entropy > out[j].Entropy })
	return out
}

// #endregion ranking
