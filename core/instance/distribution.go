package instance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/softlabel/pkg/errors"
)

// Distribution is a shared handle over per-class probabilities. Records
// copied from one another hold the same *Distribution, so writes through
// any of them are seen by all.
type Distribution struct {
	p []float64
}

// NewDistribution adopts p without copying or normalizing it.
func NewDistribution(p []float64) *Distribution {
	return &Distribution{p: p}
}

// Uniform returns n entries of 1/n.
func Uniform(n int) *Distribution {
	p := make([]float64, n)
	for i := range p {
		p[i] = 1.0 / float64(n)
	}
	return &Distribution{p: p}
}

// OneHot returns n entries with all mass on class c.
func OneHot(n, c int) *Distribution {
	p := make([]float64, n)
	p[c] = 1.0
	return &Distribution{p: p}
}

// Len returns the number of classes; a nil handle has none.
func (d *Distribution) Len() int {
	if d == nil {
		return 0
	}
	return len(d.p)
}

func (d *Distribution) At(c int) float64     { return d.p[c] }
func (d *Distribution) Set(c int, x float64) { d.p[c] = x }

// Raw returns the live backing slice.
func (d *Distribution) Raw() []float64 {
	return d.p
}

// Sum returns the total probability mass.
func (d *Distribution) Sum() float64 {
	return floats.Sum(d.p)
}

// ArgMax returns the most probable class. Ties go to the lowest index.
func (d *Distribution) ArgMax() int {
	return floats.MaxIdx(d.p)
}

// Clone returns a handle over a private copy.
func (d *Distribution) Clone() *Distribution {
	p := make([]float64, len(d.p))
	copy(p, d.p)
	return &Distribution{p: p}
}

// Normalize scales the entries in place so they sum to one.
func (d *Distribution) Normalize() error {
	sum := floats.Sum(d.p)
	if err := errors.CheckScalar("normalize", sum); err != nil {
		return err
	}
	if sum == 0 {
		return errors.WithStack(errors.ErrDegenerateDistribution)
	}
	floats.Scale(1/sum, d.p)
	return nil
}
