package lengths

import (
	"errors"
	"math/rand"
	"testing"
)

func TestUniformSampleRange(t *testing.T) {
	u, err := NewUniform(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v, err := u.Sample(rng)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if v < 0 || v > 4 {
			t.Fatalf("sample %d outside [0,4]", v)
		}
		seen[v] = true
	}
	// Both bounds are inclusive; 1000 draws make missing one vanishingly
	// unlikely.
	if !seen[0] || !seen[4] {
		t.Fatalf("bounds never drawn, saw %v", seen)
	}
}

func TestUniformZeroMax(t *testing.T) {
	u, err := NewUniform(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := u.Sample(rand.New(rand.NewSource(1)))
	if err != nil || v != 0 {
		t.Fatalf("got %d, %v; want 0, nil", v, err)
	}
}

func TestUniformNegativeMax(t *testing.T) {
	if _, err := NewUniform(-1); err == nil {
		t.Fatal("expected error for negative max length")
	}
}

func TestNormalSampleRange(t *testing.T) {
	n, err := NewNormal(10, 5, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v, err := n.Sample(rng)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if v < 0 || v > 10 {
			t.Fatalf("sample %d outside [0,10]", v)
		}
	}
}

func TestNormalRejectionExhausted(t *testing.T) {
	// All probability mass sits far above the range; every draw is rejected
	// and the bounded redraw loop must surface an error instead of hanging.
	n, err := NewNormal(2, 1e9, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = n.Sample(rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrRejectionExhausted) {
		t.Fatalf("got %v, want ErrRejectionExhausted", err)
	}
}

func TestRegistryExport(t *testing.T) {
	u, err := NewUniform(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u.Register(3)
	u.Register(3)
	u.Register(1)

	counts := u.Export()
	if len(counts) != 2 {
		t.Fatalf("exported %d entries, want 2", len(counts))
	}
	if counts[0].Length != 1 || counts[0].Count != 1 {
		t.Fatalf("first entry = %+v, want length 1 count 1", counts[0])
	}
	if counts[1].Length != 3 || counts[1].Count != 2 {
		t.Fatalf("second entry = %+v, want length 3 count 2", counts[1])
	}
}

func TestFromConfig(t *testing.T) {
	d, err := FromConfig(Config{Kind: KindUniform, MaxLen: 3})
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	if d.MaxLen() != 3 {
		t.Fatalf("uniform max = %d, want 3", d.MaxLen())
	}

	d, err = FromConfig(Config{Kind: KindNormal, MaxLen: 8, Mean: 4, Variance: 2})
	if err != nil {
		t.Fatalf("normal: %v", err)
	}
	if d.MaxLen() != 8 {
		t.Fatalf("normal max = %d, want 8", d.MaxLen())
	}

	if _, err := FromConfig(Config{Kind: "geometric"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
