package instance

import "math"

// Missing is the value stored for an unknown attribute value.
var Missing = math.NaN()

// IsMissingValue reports whether v encodes a missing value.
func IsMissingValue(v float64) bool {
	return math.IsNaN(v)
}

// Values is a shared handle over attribute values. Every record holding the
// same *Values observes the others' mutations.
type Values struct {
	data []float64
}

// NewValues adopts data; the caller must not keep writing to it unless that
// sharing is intended.
func NewValues(data []float64) *Values {
	return &Values{data: data}
}

func (v *Values) Len() int             { return len(v.data) }
func (v *Values) At(i int) float64     { return v.data[i] }
func (v *Values) Set(i int, x float64) { v.data[i] = x }

// Raw returns the live backing slice.
func (v *Values) Raw() []float64 {
	return v.data
}

// Clone returns a handle over a private copy of the values.
func (v *Values) Clone() *Values {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &Values{data: data}
}
