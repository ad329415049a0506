package lengths

// #region imports
import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// #endregion imports

// #region errors

// ErrRejectionExhausted is returned when normal-distribution rejection
// sampling cannot land inside [0, maxLen] within the attempt budget.
// The original implementation looped forever here; the bound makes a
// misconfigured mean/variance an explicit per-sequence error instead of a hang.
var ErrRejectionExhausted = errors.New("rejection sampling exhausted")

// maxRejectionAttempts bounds the normal-distribution redraw loop.
const maxRejectionAttempts = 1000

// #endregion errors

// #region distribution

// Distribution produces hole lengths in [0, MaxLen] and keeps an empirical
// frequency registry for diagnostics. Registered values never affect sampling.
type Distribution interface {
	Sample(rng *rand.Rand) (int, error)
	Register(length int)
	MaxLen() int
	Export() []LengthCount
}

// LengthCount is one (length, count) pair of the observed-length registry.
type LengthCount struct {
	Length int
	Count  int64
}

// #endregion distribution

// #region registry

// registry is the shared frequency table. Safe for concurrent Register calls
// so a worker pool can share one distribution across sequences.
type registry struct {
	mu     sync.Mutex
	counts map[int]int64
}

func newRegistry() *registry {
	return &registry{counts: make(map[int]int64)}
}

func (r *registry) register(length int) {
	r.mu.Lock()
	r.counts[length]++
	r.mu.Unlock()
}

func (r *registry) export() []LengthCount {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LengthCount, 0, len(r.counts))
	for l, c := range r.counts {
		out = append(out, LengthCount{Length: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length < out[j].Length })
	return out
}

// #endregion registry

// #region uniform

// Uniform samples hole lengths uniformly from [0, maxLen] inclusive.
type Uniform struct {
	maxLen int
	reg    *registry
}

// NewUniform creates a uniform distribution over [0, maxLen].
func NewUniform(maxLen int) (*Uniform, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("uniform distribution: negative max length %d", maxLen)
	}
	return &Uniform{maxLen: maxLen, reg: newRegistry()}, nil
}

// Sample returns a uniform random length in [0, maxLen].
func (u *Uniform) Sample(rng *rand.Rand) (int, error) {
	return rng.Intn(u.maxLen + 1), nil
}

// Register records an observed hole length.
func (u *Uniform) Register(length int) { u.reg.register(length) }

// MaxLen returns the inclusive upper sampling bound.
func (u *Uniform) MaxLen() int { return u.maxLen }

// Export returns the observed (length, count) pairs sorted by length.
func (u *Uniform) Export() []LengthCount { return u.reg.export() }

// #endregion uniform

// #region normal

// Normal samples round(N(mean, stddev)) and redraws until the result lies in
// [0, maxLen]. Redraws are bounded; see ErrRejectionExhausted.
type Normal struct {
	maxLen int
	mean   float64
	stddev float64
	reg    *registry
}

// NewNormal creates a clipped normal distribution over [0, maxLen].
func NewNormal(maxLen int, mean, variance float64) (*Normal, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("normal distribution: negative max length %d", maxLen)
	}
	if variance < 0 {
		return nil, fmt.Errorf("normal distribution: negative variance %f", variance)
	}
	return &Normal{
		maxLen: maxLen,
		mean:   mean,
		stddev: math.Sqrt(variance),
		reg:    newRegistry(),
	}, nil
}

// Sample draws from the normal distribution, rejecting out-of-range values.
func (n *Normal) Sample(rng *rand.Rand) (int, error) {
	for attempt := 0; attempt < maxRejectionAttempts; attempt++ {
		v := int(math.Round(rng.NormFloat64()*n.stddev + n.mean))
		if v >= 0 && v <= n.maxLen {
			return v, nil
		}
	}
	return 0, fmt.Errorf("normal(mean=%.2f, stddev=%.2f) in [0,%d] after %d attempts: %w",
		n.mean, n.stddev, n.maxLen, maxRejectionAttempts, ErrRejectionExhausted)
}

// Register records an observed hole length.
func (n *Normal) Register(length int) { n.reg.register(length) }

// MaxLen returns the inclusive upper sampling bound.
func (n *Normal) MaxLen() int { return n.maxLen }

// Export returns the observed (length, count) pairs sorted by length.
func (n *Normal) Export() []LengthCount { return n.reg.export() }

// #endregion normal

// #region from-config

// Kind selects the distribution family.
type Kind string

const (
	KindUniform Kind = "uniform"
	KindNormal  Kind = "normal"
)

// Config describes a hole-length distribution.
type Config struct {
	Kind     Kind
	MaxLen   int
	Mean     float64 // normal only
	Variance float64 // normal only
}

// FromConfig constructs the distribution described by cfg.
func FromConfig(cfg Config) (Distribution, error) {
	switch cfg.Kind {
	case KindUniform:
		return NewUniform(cfg.MaxLen)
	case KindNormal:
		return NewNormal(cfg.MaxLen, cfg.Mean, cfg.Variance)
	default:
		return nil, fmt.Errorf("unknown distribution kind %q", cfg.Kind)
	}
}

// #endregion from-config
