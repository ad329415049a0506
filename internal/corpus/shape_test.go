package corpus

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
)

func shapeSpecial() vocab.Special {
	return vocab.Special{Pad: 0, Mask: 1, Hole: 2, EndHole: 3, Start: 4, End: 5, VocabSize: 100}
}

func TestShapeCorpusWrapsAndPads(t *testing.T) {
	special := shapeSpecial()
	raw := [][]vocab.Token{{10, 11}}

	shaped := ShapeCorpus(raw, ShapeConfig{
		SequenceLength: 6,
		UseStartEnd:    true,
	}, special, rand.New(rand.NewSource(1)))

	want := [][]vocab.Token{{special.Start, 10, 11, special.End, 0, 0}}
	if !reflect.DeepEqual(shaped, want) {
		t.Fatalf("got %v, want %v", shaped, want)
	}
}

func TestShapeCorpusRejectsOverlong(t *testing.T) {
	special := shapeSpecial()
	raw := [][]vocab.Token{
		{10, 11, 12, 13, 14}, // 5 real tokens + start/end > 6
		{10, 11},
	}

	shaped := ShapeCorpus(raw, ShapeConfig{
		SequenceLength: 6,
		UseStartEnd:    true,
	}, special, rand.New(rand.NewSource(1)))

	if len(shaped) != 1 {
		t.Fatalf("shaped %d sequences, want 1 (overlong rejected, not truncated)", len(shaped))
	}
	if shaped[0][1] != 10 {
		t.Fatalf("kept the wrong sequence: %v", shaped[0])
	}
}

func TestShapeCorpusDuplicates(t *testing.T) {
	special := shapeSpecial()
	raw := [][]vocab.Token{{10}}

	shaped := ShapeCorpus(raw, ShapeConfig{
		SequenceLength: 4,
		DupeFactor:     3,
	}, special, rand.New(rand.NewSource(1)))

	if len(shaped) != 3 {
		t.Fatalf("shaped %d sequences, want 3", len(shaped))
	}
	for i := 1; i < len(shaped); i++ {
		if !reflect.DeepEqual(shaped[i], shaped[0]) {
			t.Fatalf("duplicate %d differs: %v vs %v", i, shaped[i], shaped[0])
		}
	}
	// Clones must not alias each other's backing arrays.
	shaped[0][0] = 99
	if shaped[1][0] == 99 {
		t.Fatal("duplicates share backing storage")
	}
}

func TestShapeCorpusShuffleDeterministic(t *testing.T) {
	special := shapeSpecial()
	raw := [][]vocab.Token{{10}, {11}, {12}, {13}}
	cfg := ShapeConfig{SequenceLength: 2, Shuffle: true}

	a := ShapeCorpus(raw, cfg, special, rand.New(rand.NewSource(9)))
	b := ShapeCorpus(raw, cfg, special, rand.New(rand.NewSource(9)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed shuffled differently:\n%v\n%v", a, b)
	}
}
