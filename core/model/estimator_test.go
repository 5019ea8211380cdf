package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/softlabel/core/instance"
	"github.com/YuminosukeSato/softlabel/pkg/errors"
	"github.com/YuminosukeSato/softlabel/pkg/log"
)

// thresholdEstimator leans towards class 1 when the first attribute is
// positive.
type thresholdEstimator struct{}

func (thresholdEstimator) DistributionFor(inst *instance.Instance) ([]float64, error) {
	if inst.Value(0) > 0 {
		return []float64{0.2, 0.8}, nil
	}
	return []float64{0.9, 0.1}, nil
}

type funcEstimator func(*instance.Instance) ([]float64, error)

func (f funcEstimator) DistributionFor(inst *instance.Instance) ([]float64, error) {
	return f(inst)
}

func records(t *testing.T, xs ...float64) []instance.SoftLabeled {
	t.Helper()
	ds := instance.NewDataset("toy",
		instance.NewNumericAttribute("x"),
		instance.NewNominalAttribute("y", "neg", "pos"),
	)
	require.NoError(t, ds.SetClassIndex(1))

	out := make([]instance.SoftLabeled, len(xs))
	for i, x := range xs {
		inst := instance.NewInstance(1, []float64{x, instance.Missing})
		inst.SetDataset(ds)
		s, err := instance.NewSoftInstance(inst)
		require.NoError(t, err)
		out[i] = s
	}
	return out
}

func withTestLogger(t *testing.T) *log.TestLogger {
	t.Helper()
	previous := log.GetLogger()
	t.Cleanup(func() { log.SetLogger(previous) })
	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	log.SetLogger(testLogger)
	return testLogger
}

func TestRelabel(t *testing.T) {
	testLogger := withTestLogger(t)
	recs := records(t, -1, 2, 3)

	require.NoError(t, Relabel(thresholdEstimator{}, recs))

	assert.Equal(t, []float64{0.9, 0.1}, recs[0].ClassDistribution().Raw())
	assert.Equal(t, []float64{0.2, 0.8}, recs[1].ClassDistribution().Raw())
	assert.Equal(t, []float64{0.2, 0.8}, recs[2].ClassDistribution().Raw())
	assert.True(t, testLogger.ContainsMessage("relabel completed"))
	assert.True(t, testLogger.ContainsField(log.SamplesKey, 3.0))
}

func TestRelabelErrors(t *testing.T) {
	estimatorErr := errors.New("estimator unavailable")

	tests := []struct {
		name  string
		est   DistributionEstimator
		check func(t *testing.T, err error)
	}{
		{
			name: "estimator error",
			est: funcEstimator(func(*instance.Instance) ([]float64, error) {
				return nil, estimatorErr
			}),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, estimatorErr))
			},
		},
		{
			name: "wrong length",
			est: funcEstimator(func(*instance.Instance) ([]float64, error) {
				return []float64{1}, nil
			}),
			check: func(t *testing.T, err error) {
				var lenErr *errors.DistributionLengthError
				assert.True(t, errors.As(err, &lenErr))
			},
		},
		{
			name: "panic",
			est: funcEstimator(func(*instance.Instance) ([]float64, error) {
				panic("estimator bug")
			}),
			check: func(t *testing.T, err error) {
				var panicErr *errors.PanicError
				assert.True(t, errors.As(err, &panicErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger := withTestLogger(t)
			recs := records(t, 1, 2)

			err := Relabel(tt.est, recs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "relabel record 0")
			tt.check(t, err)

			assert.Equal(t, []float64{0.5, 0.5}, recs[0].ClassDistribution().Raw())
			assert.True(t, testLogger.ContainsField(log.ErrorCodeKey, log.ErrorEstimatorFailure))
		})
	}
}
