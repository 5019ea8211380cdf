// Package softlabel provides soft-labelled records for classic machine
// learning workflows in Go.
//
// A soft label is a probability distribution over class values attached to
// a training record, in place of a single hard class. Expectation-
// Maximization and other soft classifiers read and rewrite these
// distributions between iterations.
//
// # Packages
//
//   - core/instance: dataset schema, records, SoftInstance and batch helpers
//   - core/model: estimator contracts and Relabel
//   - metrics: class mass, entropy and hard-label agreement
//   - viz: class mass charts
//   - pkg/errors, pkg/log: error types and structured logging
//
// # Quick Start
//
//	ds := instance.NewDataset("weather",
//	    instance.NewNumericAttribute("temperature"),
//	    instance.NewNominalAttribute("play", "no", "yes"),
//	)
//	_ = ds.SetClassIndex(1)
//
//	inst := instance.NewInstance(1, []float64{21, 1})
//	inst.SetDataset(ds)
//
//	s, err := instance.NewSoftInstance(inst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.ClassDistribution().Raw()) // [0 1]
//
// # Sharing
//
// Records share attribute values and distributions through handles:
// SoftInstance.Copy and the constructors alias the source's storage. Mutations
// through one holder are visible to all holders of the same handle.
package softlabel
