package ranking

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceSelfIsZero(t *testing.T) {
	v := FeatureVector{"comp": 3, "mem": 7, "branches": 0.5}
	d, err := Distance(v, v, "self")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance(v, v) = %f, want 0", d)
	}
}

func TestDistanceLegacyMetric(t *testing.T) {
	// The metric is sqrt(sum |t^2 - c^2|), not Euclidean. For t=3, c=1:
	// |9 - 1| = 8, so the distance is sqrt(8), where Euclidean would give 2.
	candidate := FeatureVector{"comp": 1}
	target := FeatureVector{"comp": 3}

	d, err := Distance(candidate, target, "bench")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-math.Sqrt(8)) > 1e-12 {
		t.Fatalf("distance = %f, want sqrt(8)", d)
	}
}

func TestDistanceIgnoresExtraCandidateKeys(t *testing.T) {
	// Only the target's key set participates.
	candidate := FeatureVector{"comp": 2, "extra": 100}
	target := FeatureVector{"comp": 2}

	d, err := Distance(candidate, target, "bench")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance = %f, want 0", d)
	}
}

func TestDistanceMissingKey(t *testing.T) {
	candidate := FeatureVector{"comp": 1}
	target := FeatureVector{"comp": 1, "mem": 2}

	_, err := Distance(candidate, target, "bench")
	var knf *KeyNotFoundError
	if !errors.As(err, &knf) {
		t.Fatalf("got %v, want KeyNotFoundError", err)
	}
	if knf.Key != "mem" || knf.Benchmark != "bench" {
		t.Fatalf("error fields = %+v", knf)
	}
}

func TestScoreAllExcludesMismatches(t *testing.T) {
	r := NewRanker([]Benchmark{{
		Name:     "target",
		Features: FeatureVector{"comp": 2},
	}})

	candidates := []Candidate{
		{ID: "a", Features: FeatureVector{"comp": 2}},
		{ID: "b", Features: FeatureVector{"mem": 1}},
		{ID: "c", Features: FeatureVector{"comp": 5}},
	}
	scored, excluded := r.ScoreAll(candidates)
	if excluded != 1 {
		t.Fatalf("excluded = %d, want 1", excluded)
	}
	if len(scored) != 2 {
		t.Fatalf("scored %d candidates, want 2", len(scored))
	}
	if scored[0].ID != "a" || scored[0].Score != 0 {
		t.Fatalf("first scored = %+v", scored[0])
	}
}

func TestTopKBoundaries(t *testing.T) {
	candidates := []Candidate{
		{ID: "far", Score: 9},
		{ID: "near", Score: 1},
		{ID: "mid", Score: 4},
	}

	all := TopK(candidates, -1)
	if len(all) != 3 {
		t.Fatalf("K=-1 returned %d, want all 3", len(all))
	}
	if all[0].ID != "near" || all[1].ID != "mid" || all[2].ID != "far" {
		t.Fatalf("K=-1 order = %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}

	if got := TopK(candidates, 0); len(got) != 0 {
		t.Fatalf("K=0 returned %d, want 0", len(got))
	}
	if got := TopK(nil, 5); len(got) != 0 {
		t.Fatalf("empty input returned %d, want 0", len(got))
	}
	if got := TopK(candidates, 2); len(got) != 2 || got[0].ID != "near" {
		t.Fatalf("K=2 = %v", got)
	}
	if got := TopK(candidates, 10); len(got) != 3 {
		t.Fatalf("K beyond len returned %d, want 3", len(got))
	}
}

func TestTopKCompleteBeforeIncomplete(t *testing.T) {
	candidates := []Candidate{
		{ID: "cut-short", Score: 0.1, Incomplete: true},
		{ID: "whole", Score: 5},
	}
	got := TopK(candidates, -1)
	if got[0].ID != "whole" || got[1].ID != "cut-short" {
		t.Fatalf("order = %s,%s; incomplete must sort last regardless of score", got[0].ID, got[1].ID)
	}
}

func TestRankerRotation(t *testing.T) {
	r := NewRanker([]Benchmark{
		{Name: "first"},
		{Name: "second"},
	})

	if r.Target().Name != "first" {
		t.Fatalf("initial target = %s", r.Target().Name)
	}
	if !r.Advance() {
		t.Fatal("advance to second should succeed")
	}
	if r.Target().Name != "second" {
		t.Fatalf("target after advance = %s", r.Target().Name)
	}
	if r.Advance() {
		t.Fatal("advance past the end should report exhaustion")
	}
	if r.Target() != nil {
		t.Fatal("exhausted ranker should have no target")
	}
}
