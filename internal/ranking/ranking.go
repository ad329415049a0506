package ranking

// #region imports
import (
	"fmt"
	"log"
	"math"
	"sort"
)

// #endregion imports

// #region types

// FeatureVector is a named numeric feature map produced by the external
// feature extractor for one source program.
type FeatureVector map[string]float64

// Benchmark is a fixed reference program used as a similarity anchor.
// Benchmarks are read-only for the duration of a sampling round.
type Benchmark struct {
	Name     string
	Source   string
	Features FeatureVector
}

// Candidate is a generated program with its computed distance score.
type Candidate struct {
	ID         string
	Source     string
	Features   FeatureVector
	Score      float64
	Incomplete bool // feed loop hit its cap before all holes closed
}

// #endregion types

// #region key-not-found

// KeyNotFoundError reports a candidate feature vector missing a key present
// in the target benchmark. No default is substituted; the comparison fails
// and the caller excludes the candidate.
type KeyNotFoundError struct {
	Key       string
	Benchmark string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("feature %q of benchmark %q not present in candidate vector", e.Key, e.Benchmark)
}

// #endregion key-not-found

// #region ranker

// Ranker scores candidates by feature-space distance to a target benchmark
// and rotates through an ordered benchmark list.
type Ranker struct {
	benchmarks []Benchmark
	target     int
}

// NewRanker creates a ranker over an ordered benchmark list. The first
// benchmark is the initial target.
func NewRanker(benchmarks []Benchmark) *Ranker {
	return &Ranker{benchmarks: benchmarks}
}

// Target returns the current target benchmark, or nil when the list is
// exhausted.
func (r *Ranker) Target() *Benchmark {
	if r.target >= len(r.benchmarks) {
		return nil
	}
	return &r.benchmarks[r.target]
}

// Advance moves to the next target benchmark and reports whether one remains.
func (r *Ranker) Advance() bool {
	if r.target < len(r.benchmarks) {
		r.target++
	}
	if t := r.Target(); t != nil {
		log.Printf("[RANK] target benchmark: %s", t.Name)
		return true
	}
	return false
}

// #endregion ranker

// #region distance

// Distance computes the feature-space distance from a candidate vector to
// the target vector, over the target's key set.
//
// This is the legacy metric sqrt(Σ|target²−candidate²|), not Euclidean
// distance: squares are combined by absolute difference of squares rather
// than difference-then-square. It is asymmetric in everything except
// Distance(v, v) == 0. Preserved verbatim from the original system; tests
// pin it under the "legacy metric" name so a future correction is a
// one-line change here.
func Distance(candidate, target FeatureVector, benchmarkName string) (float64, error) {
	var d float64
	for key, t := range target {
		c, ok := candidate[key]
		if !ok {
			return 0, &KeyNotFoundError{Key: key, Benchmark: benchmarkName}
		}
		d += math.Abs(t*t - c*c)
	}
	return math.Sqrt(d), nil
}

// ScoreAll computes each candidate's distance to the current target,
// excluding candidates whose vectors fail the key check. The returned slice
// holds only scored candidates; the int is the excluded count.
func (r *Ranker) ScoreAll(candidates []Candidate) ([]Candidate, int) {
	target := r.Target()
	if target == nil {
		return nil, len(candidates)
	}

	scored := make([]Candidate, 0, len(candidates))
	excluded := 0
	for _, c := range candidates {
		score, err := Distance(c.Features, target.Features, target.Name)
		if err != nil {
			log.Printf("[RANK] excluding candidate %s: %v", c.ID, err)
			excluded++
			continue
		}
		c.Score = score
		scored = append(scored, c)
	}
	return scored, excluded
}

// #endregion distance

// #region top-k

// TopK returns the K closest candidates, ascending by score. Complete
// candidates always sort ahead of incomplete ones; within each group the
// sort is stable on score. K = -1 means unbounded, K = 0 returns nothing.
func TopK(candidates []Candidate, k int) []Candidate {
	if k == 0 || len(candidates) == 0 {
		return []Candidate{}
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Incomplete != sorted[j].Incomplete {
			return !sorted[i].Incomplete
		}
		return sorted[i].Score < sorted[j].Score
	})

	if k < 0 || k > len(sorted) {
		return sorted
	}
	return sorted[:k]
}

// #endregion top-k
