package instance

import (
	"math"

	"github.com/YuminosukeSato/softlabel/pkg/errors"
)

// Instance is a hard-labelled record: attribute values, a weight and the
// dataset that defines them. The class value, if any, is stored among the
// attribute values at the dataset's class index.
type Instance struct {
	values  *Values
	weight  float64
	dataset *Dataset
}

// NewInstance adopts values as a new shared handle.
func NewInstance(weight float64, values []float64) *Instance {
	return &Instance{values: NewValues(values), weight: weight}
}

// Values returns the shared values handle.
func (i *Instance) Values() *Values {
	return i.values
}

// Value returns the value of attribute idx.
func (i *Instance) Value(idx int) float64 {
	return i.values.At(idx)
}

// SetValue writes through the shared handle.
func (i *Instance) SetValue(idx int, v float64) {
	i.values.Set(idx, v)
}

// IsMissing reports whether attribute idx is missing.
func (i *Instance) IsMissing(idx int) bool {
	return IsMissingValue(i.values.At(idx))
}

// NumAttributes returns the number of stored values.
func (i *Instance) NumAttributes() int {
	if i.values == nil {
		return 0
	}
	return i.values.Len()
}

func (i *Instance) Weight() float64     { return i.weight }
func (i *Instance) SetWeight(w float64) { i.weight = w }

// Dataset returns the schema, nil if the instance has none.
func (i *Instance) Dataset() *Dataset {
	return i.dataset
}

// SetDataset links the instance to a schema. The dataset is not modified.
func (i *Instance) SetDataset(d *Dataset) {
	i.dataset = d
}

// ClassIsMissing reports whether the class value is unknown.
func (i *Instance) ClassIsMissing() (bool, error) {
	idx, err := i.classIndex()
	if err != nil {
		return false, err
	}
	return i.IsMissing(idx), nil
}

// ClassValue returns the stored class value; for a nominal class this is the
// label index. It is NaN when missing.
func (i *Instance) ClassValue() (float64, error) {
	idx, err := i.classIndex()
	if err != nil {
		return math.NaN(), err
	}
	return i.values.At(idx), nil
}

func (i *Instance) classIndex() (int, error) {
	if i.dataset == nil {
		return -1, errors.WithStack(errors.ErrNoDataset)
	}
	idx := i.dataset.ClassIndex()
	if idx < 0 {
		return -1, errors.WithStack(errors.ErrClassUnset)
	}
	return idx, nil
}

// Copy returns a shallow copy sharing the values handle and dataset.
func (i *Instance) Copy() *Instance {
	c := *i
	return &c
}
