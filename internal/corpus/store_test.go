package corpus

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/committee"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/lengths"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/ranking"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "sampler.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSequenceRoundTrip(t *testing.T) {
	store := openTestStore(t)

	seqs := [][]vocab.Token{
		{4, 10, 11, 5, 0, 0},
		{4, 12, 5, 0, 0, 0},
	}
	if err := store.AddSequences(seqs); err != nil {
		t.Fatalf("add sequences: %v", err)
	}

	got, err := store.Sequences(0)
	if err != nil {
		t.Fatalf("load sequences: %v", err)
	}
	if !reflect.DeepEqual(got, seqs) {
		t.Fatalf("got %v, want %v", got, seqs)
	}

	limited, err := store.Sequences(1)
	if err != nil {
		t.Fatalf("load limited: %v", err)
	}
	if len(limited) != 1 || !reflect.DeepEqual(limited[0], seqs[0]) {
		t.Fatalf("limited = %v", limited)
	}
}

func TestCandidateRoundTrip(t *testing.T) {
	store := openTestStore(t)

	cands := []ranking.Candidate{
		{ID: "c1", Source: "kernel void A() {}", Features: ranking.FeatureVector{"comp": 3}, Score: 1.5},
		{ID: "c2", Source: "kernel void B() {}", Features: ranking.FeatureVector{"comp": 1}, Score: 0.5, Incomplete: true},
	}
	if err := store.AddCandidates("round-1", "bench-a", cands); err != nil {
		t.Fatalf("add candidates: %v", err)
	}

	got, err := store.RoundCandidates("round-1")
	if err != nil {
		t.Fatalf("load candidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	// Complete candidates sort ahead of incomplete ones even with a worse
	// score, matching the in-memory ranking order.
	if got[0].ID != "c1" || got[1].ID != "c2" {
		t.Fatalf("order = %s,%s; want c1,c2", got[0].ID, got[1].ID)
	}
	if got[0].Features["comp"] != 3 {
		t.Fatalf("features = %v", got[0].Features)
	}
	if !got[1].Incomplete {
		t.Fatal("incomplete flag lost")
	}

	other, err := store.RoundCandidates("round-2")
	if err != nil {
		t.Fatalf("load empty round: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("unexpected candidates for other round: %v", other)
	}
}

func TestRecordVote(t *testing.T) {
	store := openTestStore(t)

	vote := committee.Vote{"m1": 0, "m2": 1}
	if err := store.RecordVote("sample-1", vote, 0.693); err != nil {
		t.Fatalf("record vote: %v", err)
	}

	var n int
	if err := store.DB().QueryRow(
		`SELECT COUNT(*) FROM committee_votes WHERE sample_id = ?`, "sample-1",
	).Scan(&n); err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if n != 2 {
		t.Fatalf("stored %d vote rows, want 2", n)
	}
}

func TestLengthCountsMerge(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveLengthCounts("train", []lengths.LengthCount{
		{Length: 1, Count: 3},
		{Length: 4, Count: 1},
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// A second export from another worker merges counts instead of clobbering.
	if err := store.SaveLengthCounts("train", []lengths.LengthCount{
		{Length: 1, Count: 2},
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.LengthCounts("train")
	if err != nil {
		t.Fatalf("load counts: %v", err)
	}
	want := []lengths.LengthCount{{Length: 1, Count: 5}, {Length: 4, Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
