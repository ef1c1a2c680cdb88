// Package randx provides the deterministic random streams used across dataset
// generation. Every component receives an explicit *Rand; nothing reads global
// random state, so output is identical across runs and across any degree of
// parallelism.
package randx

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Stream identifiers for the non-per-employee phases. Per-employee streams
// start at offset EmployeeStreamBase so they never collide with these.
const (
	StreamHierarchy    uint64 = iota
	EmployeeStreamBase uint64 = 1 << 32
)

type Rand struct {
	src *rand.Rand
}

// New returns the stream identified by (seed, stream). The same pair always
// yields the same draw sequence.
func New(seed int64, stream uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// ForEmployee derives the sub-stream for the employee at slot index idx.
func ForEmployee(seed int64, idx int) *Rand {
	return New(seed, EmployeeStreamBase+uint64(idx))
}

// Float64 returns a uniform draw in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.IntN(hi-lo+1)
}

// IntN returns a uniform integer in [0, n).
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Pick returns a uniformly chosen element of xs. Panics on empty input, same
// as indexing would; callers guard emptiness.
func Pick[T any](r *Rand, xs []T) T {
	return xs[r.src.IntN(len(xs))]
}

// Money returns a uniform draw in [lo, hi] rounded to cents.
func (r *Rand) Money(lo, hi float64) decimal.Decimal {
	v := lo + r.src.Float64()*(hi-lo)
	return decimal.NewFromFloat(v).Round(2)
}

// Pct returns a uniform percentage draw in [lo, hi] kept at full precision;
// rounding happens once the percentage is applied to a money amount.
func (r *Rand) Pct(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}
