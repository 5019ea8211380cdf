package instance

import (
	"strconv"

	"github.com/YuminosukeSato/softlabel/pkg/errors"
	"github.com/YuminosukeSato/softlabel/pkg/log"
)

// MaxRedraws bounds how many times a random distribution is redrawn when
// every draw came out as exactly zero.
var MaxRedraws = 8

// Source supplies uniform random numbers in [0, 1). *rand.Rand from both
// math/rand and math/rand/v2 satisfy it. Implementations are not assumed to
// be safe for concurrent use.
type Source interface {
	Float64() float64
}

// SoftLabeled is a record carrying a probability distribution over class
// values instead of a single class label.
type SoftLabeled interface {
	// Base returns the underlying record.
	Base() *Instance
	// NumClasses returns the number of class values of the record's dataset.
	NumClasses() int
	// ClassProbability returns the probability of class. class must lie in
	// [0, NumClasses()); it is not checked.
	ClassProbability(class int) float64
	// SetClassProbability overwrites one entry. The rest of the
	// distribution is left as is.
	SetClassProbability(class int, p float64)
	// ClassDistribution returns the live distribution handle.
	ClassDistribution() *Distribution
	// SetClassDistribution installs dist as a new handle.
	SetClassDistribution(dist []float64) error
}

var _ SoftLabeled = (*SoftInstance)(nil)

// SoftInstance is an Instance with a class distribution attached.
//
// The zero value has no dataset and no distribution; it is only useful as
// a target for field-by-field staging.
type SoftInstance struct {
	Instance
	dist *Distribution
}

// NewRandomSoftInstance shares src's values, weight and dataset and draws a
// random normalized distribution over the classes from rng.
//
// If every draw is exactly zero the distribution is redrawn, up to
// MaxRedraws times, after which the uniform distribution is used.
func NewRandomSoftInstance(src *Instance, rng Source) (*SoftInstance, error) {
	n, err := softClassCount("NewRandomSoftInstance", src.dataset)
	if err != nil {
		return nil, err
	}
	dist, err := randomDistribution(n, rng)
	if err != nil {
		return nil, errors.Wrap(err, "NewRandomSoftInstance")
	}
	return &SoftInstance{Instance: *src, dist: dist}, nil
}

// NewSoftInstance shares src's values, weight and dataset and puts all the
// probability on src's class. When the class is missing every class gets
// 1/n.
func NewSoftInstance(src *Instance) (*SoftInstance, error) {
	const op = "NewSoftInstance"
	n, err := softClassCount(op, src.dataset)
	if err != nil {
		return nil, err
	}
	missing, err := src.ClassIsMissing()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if missing {
		return &SoftInstance{Instance: *src, dist: Uniform(n)}, nil
	}

	v, err := src.ClassValue()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	c, ok := LabelIndex(v, n)
	if !ok {
		return nil, errors.NewValueError(op,
			"class value "+strconv.FormatFloat(v, 'g', -1, 64)+" is not a label index in [0, "+strconv.Itoa(n)+")")
	}
	return &SoftInstance{Instance: *src, dist: OneHot(n, c)}, nil
}

// LabelIndex converts a stored nominal class value into a label index. It
// reports false unless v is a whole number in [0, n).
func LabelIndex(v float64, n int) (int, bool) {
	c := int(v)
	if float64(c) != v || c < 0 || c >= n {
		return 0, false
	}
	return c, true
}

func randomDistribution(n int, rng Source) (*Distribution, error) {
	p := make([]float64, n)
	for redraw := 0; redraw <= MaxRedraws; redraw++ {
		for c := range p {
			p[c] = rng.Float64()
		}
		d := NewDistribution(p)
		err := d.Normalize()
		if err == nil {
			if redraw > 0 {
				log.GetLogger().Debug("random distribution redrawn",
					log.ComponentKey, "instance",
					log.RedrawsKey, redraw,
				)
			}
			return d, nil
		}
		if !errors.Is(err, errors.ErrDegenerateDistribution) {
			return nil, err
		}
	}

	log.GetLogger().Warn("random distribution degenerate, using uniform",
		log.ComponentKey, "instance",
		log.ClassesKey, n,
		log.RedrawsKey, MaxRedraws,
		log.FallbackKey, "uniform",
		log.ErrorCodeKey, log.ErrorDegenerate,
	)
	return Uniform(n), nil
}

// Base returns the embedded record.
func (s *SoftInstance) Base() *Instance {
	return &s.Instance
}

// NumClasses returns the number of class values of the dataset, 0 without
// one.
func (s *SoftInstance) NumClasses() int {
	if s.dataset == nil {
		return 0
	}
	return s.dataset.NumClasses()
}

func (s *SoftInstance) ClassProbability(class int) float64 {
	return s.dist.At(class)
}

func (s *SoftInstance) SetClassProbability(class int, p float64) {
	s.dist.Set(class, p)
}

// ClassDistribution returns the live handle; nil on a zero SoftInstance.
func (s *SoftInstance) ClassDistribution() *Distribution {
	return s.dist
}

// SetClassDistribution adopts dist as the record's new distribution handle.
// Copies made earlier keep the previous handle. dist must have exactly
// NumClasses() entries.
func (s *SoftInstance) SetClassDistribution(dist []float64) error {
	if s.dataset == nil {
		return errors.Wrap(errors.ErrNoDataset, "SetClassDistribution")
	}
	if n := s.NumClasses(); len(dist) != n {
		return errors.NewDistributionLengthError(n, dist)
	}
	s.dist = NewDistribution(dist)
	return nil
}

// Copy returns a shallow copy: values, dataset and distribution handles are
// shared, the weight is copied.
func (s *SoftInstance) Copy() *SoftInstance {
	c := *s
	return &c
}
