package instance

import (
	"github.com/YuminosukeSato/softlabel/pkg/errors"
)

// Attribute describes one column of a Dataset. It is nominal when it has
// labels and numeric otherwise.
type Attribute struct {
	Name   string
	Values []string
}

// NewNominalAttribute returns a nominal attribute over labels.
func NewNominalAttribute(name string, labels ...string) Attribute {
	return Attribute{Name: name, Values: labels}
}

// NewNumericAttribute returns a numeric attribute.
func NewNumericAttribute(name string) Attribute {
	return Attribute{Name: name}
}

// IsNominal reports whether the attribute has a fixed set of labels.
func (a *Attribute) IsNominal() bool {
	return len(a.Values) > 0
}

// NumValues returns the number of labels, 0 for numeric attributes.
func (a *Attribute) NumValues() int {
	return len(a.Values)
}

// IndexOf returns the index of label, or -1.
func (a *Attribute) IndexOf(label string) int {
	for i, v := range a.Values {
		if v == label {
			return i
		}
	}
	return -1
}

// Dataset is the schema records point back to. It defines the attributes
// and which of them is the class.
type Dataset struct {
	name       string
	attributes []Attribute
	classIndex int
}

// NewDataset creates a schema with no class attribute selected.
func NewDataset(name string, attrs ...Attribute) *Dataset {
	return &Dataset{
		name:       name,
		attributes: attrs,
		classIndex: -1,
	}
}

// Name returns the dataset name.
func (d *Dataset) Name() string {
	return d.name
}

// NumAttributes returns the number of attributes, class included.
func (d *Dataset) NumAttributes() int {
	return len(d.attributes)
}

// Attribute returns the i-th attribute.
func (d *Dataset) Attribute(i int) *Attribute {
	return &d.attributes[i]
}

// SetClassIndex selects the class attribute. -1 unsets it.
func (d *Dataset) SetClassIndex(i int) error {
	if i < -1 || i >= len(d.attributes) {
		return errors.NewValidationError("class_index", "out of range", i)
	}
	d.classIndex = i
	return nil
}

// ClassIndex returns the class attribute index, or -1 when unset.
func (d *Dataset) ClassIndex() int {
	return d.classIndex
}

// ClassAttribute returns the class attribute.
func (d *Dataset) ClassAttribute() (*Attribute, error) {
	if d.classIndex < 0 {
		return nil, errors.WithStack(errors.ErrClassUnset)
	}
	return &d.attributes[d.classIndex], nil
}

// NumClasses returns the number of class values: the label count for a
// nominal class, 1 for a numeric one and 0 when no class is selected.
func (d *Dataset) NumClasses() int {
	if d.classIndex < 0 {
		return 0
	}
	if attr := &d.attributes[d.classIndex]; attr.IsNominal() {
		return attr.NumValues()
	}
	return 1
}

// softClassCount resolves the number of classes a distribution must span.
// Soft labels need a nominal class with at least one label.
func softClassCount(op string, d *Dataset) (int, error) {
	if d == nil {
		return 0, errors.Wrap(errors.ErrNoDataset, op)
	}
	attr, err := d.ClassAttribute()
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	if !attr.IsNominal() {
		return 0, errors.NewValueError(op, "class attribute "+attr.Name+" is numeric")
	}
	return attr.NumValues(), nil
}
