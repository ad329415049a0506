package vocab

import (
	"reflect"
	"testing"
)

func testSpecial() Special {
	return Special{Pad: 0, Mask: 1, Hole: 2, EndHole: 3, Start: 4, End: 5, VocabSize: 100}
}

func TestActualLength(t *testing.T) {
	if got := ActualLength([]Token{10, 11, 0, 0}, 0); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := ActualLength([]Token{10, 11}, 0); got != 2 {
		t.Fatalf("no padding: got %d, want 2", got)
	}
	if got := ActualLength([]Token{0, 10}, 0); got != 0 {
		t.Fatalf("leading pad: got %d, want 0", got)
	}
	if got := ActualLength(nil, 0); got != 0 {
		t.Fatalf("empty: got %d, want 0", got)
	}
}

func TestPadTo(t *testing.T) {
	got := PadTo([]Token{7}, 0, 3)
	if !reflect.DeepEqual(got, []Token{7, 0, 0}) {
		t.Fatalf("got %v", got)
	}
	long := []Token{7, 8, 9, 10}
	if got := PadTo(long, 0, 2); len(got) != 4 {
		t.Fatalf("over-length sequence changed: %v", got)
	}
}

func TestInputMask(t *testing.T) {
	got := InputMask([]Token{10, 11, 0, 0}, 0)
	if !reflect.DeepEqual(got, []int32{1, 1, 0, 0}) {
		t.Fatalf("got %v", got)
	}
}

func TestCountOpen(t *testing.T) {
	s := testSpecial()
	seq := []Token{10, s.Mask, 11, s.Hole, s.Hole, 0}
	if got := CountOpen(seq, s); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestIsMeta(t *testing.T) {
	s := testSpecial()
	for _, meta := range []Token{s.Pad, s.Mask, s.Hole, s.EndHole, s.Start, s.End} {
		if !s.IsMeta(meta) {
			t.Fatalf("token %d should be reserved", meta)
		}
	}
	if s.IsMeta(42) {
		t.Fatal("token 42 should not be reserved")
	}
}

func TestWrapStartEnd(t *testing.T) {
	s := testSpecial()
	got := WrapStartEnd([]Token{10, 11}, s)
	if !reflect.DeepEqual(got, []Token{s.Start, 10, 11, s.End}) {
		t.Fatalf("got %v", got)
	}

	// Already wrapped sequences stay single-wrapped.
	got = WrapStartEnd(got, s)
	if !reflect.DeepEqual(got, []Token{s.Start, 10, 11, s.End}) {
		t.Fatalf("double wrap: got %v", got)
	}
}
