// Package log defines standard attribute keys for soft-label operations.
//
// Keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so log output can be filtered consistently.

package log

// Operation Context
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "instance", "model", "metrics"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// EstimatorKey names the external estimator used during relabelling.
	EstimatorKey = "model.estimator"
)

// Data Shape
const (
	// DatasetKey is the name of the dataset the records belong to.
	DatasetKey = "data.dataset"

	// SamplesKey indicates the number of records processed.
	SamplesKey = "data.samples"

	// ClassesKey indicates the number of class values.
	ClassesKey = "softlabel.classes"

	// RecordKey is the index of a single record within a batch.
	RecordKey = "softlabel.record"

	// WorkersKey is the number of workers a batch was fanned out to.
	WorkersKey = "perf.workers"
)

// Soft-label specifics
const (
	// RedrawsKey counts redraws taken for a random distribution.
	RedrawsKey = "softlabel.redraws"

	// FallbackKey names the distribution used when a random draw degenerates.
	FallbackKey = "softlabel.fallback"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationSoften       = "soften"
	OperationSoftenRandom = "soften_random"
	OperationRelabel      = "relabel"
	OperationMatrix       = "distribution_matrix"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorDegenerate        = "DEGENERATE_DISTRIBUTION"
	ErrorEstimatorFailure  = "ESTIMATOR_FAILURE"
)
