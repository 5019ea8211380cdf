// Package viz renders soft-label summaries with gonum/plot.
package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/softlabel/core/instance"
	"github.com/YuminosukeSato/softlabel/pkg/errors"
)

// ClassMassChart draws one bar per class value of ds, as returned by
// metrics.ClassMass.
func ClassMassChart(ds *instance.Dataset, mass []float64) (*plot.Plot, error) {
	const op = "ClassMassChart"
	attr, err := ds.ClassAttribute()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if attr.NumValues() != len(mass) {
		return nil, errors.NewDimensionError(op, attr.NumValues(), len(mass), 1)
	}

	bars, err := plotter.NewBarChart(plotter.Values(mass), vg.Points(20))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = "Class mass: " + ds.Name()
	p.X.Label.Text = attr.Name
	p.Y.Label.Text = "weighted probability"
	p.Add(bars)
	p.NominalX(attr.Values...)
	return p, nil
}
