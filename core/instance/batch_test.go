package instance

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/softlabel/pkg/errors"
	"github.com/YuminosukeSato/softlabel/pkg/log"
)

func labelledBatch(ds *Dataset, n int) []*Instance {
	classes := ds.NumClasses()
	out := make([]*Instance, n)
	for i := range out {
		class := float64(i % classes)
		if i%5 == 4 {
			class = Missing
		}
		out[i] = labelled(ds, float64(i), class)
	}
	return out
}

func TestSoftenAll(t *testing.T) {
	ds := weatherDataset(t, 3)

	for _, size := range []int{0, 10, 3000} {
		src := labelledBatch(ds, size)
		soft, err := SoftenAll(src)
		require.NoError(t, err)
		require.Len(t, soft, size)

		for i, s := range soft {
			assert.Same(t, src[i].Values(), s.Values())
			if i%5 == 4 {
				assert.InDelta(t, 1.0/3, s.ClassProbability(0), 1e-15)
				continue
			}
			assert.Equal(t, i%3, s.ClassDistribution().ArgMax())
			assert.Equal(t, 1.0, s.ClassProbability(i%3))
		}
	}
}

func TestSoftenAllReportsFailingRecord(t *testing.T) {
	ds := weatherDataset(t, 3)
	src := labelledBatch(ds, 20)
	src[7] = labelled(ds, 0, 42)

	soft, err := SoftenAll(src)
	require.Error(t, err)
	assert.Nil(t, soft)
	assert.Contains(t, err.Error(), "record 7")
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

func TestSoftenAllRandom(t *testing.T) {
	ds := weatherDataset(t, 4)
	src := labelledBatch(ds, 50)

	soft, err := SoftenAllRandom(src, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	require.Len(t, soft, 50)
	for _, s := range soft {
		assert.InDelta(t, 1.0, s.ClassDistribution().Sum(), 1e-12)
	}

	src[3] = NewInstance(1, []float64{0, 0})
	_, err = SoftenAllRandom(src, rand.New(rand.NewPCG(5, 6)))
	assert.True(t, errors.Is(err, errors.ErrNoDataset))
	assert.Contains(t, err.Error(), "record 3")
}

func asSoftLabeled(soft []*SoftInstance) []SoftLabeled {
	out := make([]SoftLabeled, len(soft))
	for i, s := range soft {
		out[i] = s
	}
	return out
}

func TestDistributionMatrixRoundTrip(t *testing.T) {
	ds := weatherDataset(t, 3)
	soft, err := SoftenAll(labelledBatch(ds, 6))
	require.NoError(t, err)
	records := asSoftLabeled(soft)

	m, err := DistributionMatrix(records)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{0, 1, 0}, m.RawRowView(1))

	m.Set(1, 0, 0.5)
	assert.Equal(t, 0.0, records[1].ClassProbability(0), "matrix holds copies")

	update := mat.NewDense(6, 3, nil)
	for i := 0; i < 6; i++ {
		update.SetRow(i, []float64{0.2, 0.3, 0.5})
	}
	require.NoError(t, SetDistributionsFromMatrix(records, update))
	for _, rec := range records {
		assert.Equal(t, []float64{0.2, 0.3, 0.5}, rec.ClassDistribution().Raw())
	}
	assert.NotSame(t, records[0].ClassDistribution(), records[1].ClassDistribution())

	update.Set(0, 0, 1)
	assert.Equal(t, 0.2, records[0].ClassProbability(0))
}

func TestDistributionMatrixErrors(t *testing.T) {
	_, err := DistributionMatrix(nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	a, err := NewSoftInstance(labelled(weatherDataset(t, 2), 0, 0))
	require.NoError(t, err)
	b, err := NewSoftInstance(labelled(weatherDataset(t, 3), 0, 0))
	require.NoError(t, err)

	_, err = DistributionMatrix([]SoftLabeled{a, b})
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Axis)

	_, err = DistributionMatrix([]SoftLabeled{&SoftInstance{}})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestSetDistributionsFromMatrixErrors(t *testing.T) {
	ds := weatherDataset(t, 3)
	soft, err := SoftenAll(labelledBatch(ds, 2))
	require.NoError(t, err)
	records := asSoftLabeled(soft)

	var dimErr *errors.DimensionError
	err = SetDistributionsFromMatrix(records, mat.NewDense(3, 3, nil))
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 0, dimErr.Axis)

	err = SetDistributionsFromMatrix(records, mat.NewDense(2, 2, nil))
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Axis)
	assert.Equal(t, []float64{1, 0, 0}, records[0].ClassDistribution().Raw())
}

func TestSetDistributionsFromMatrixIsAllOrNothing(t *testing.T) {
	a, err := NewSoftInstance(labelled(weatherDataset(t, 2), 0, 0))
	require.NoError(t, err)
	b, err := NewSoftInstance(labelled(weatherDataset(t, 3), 0, 0))
	require.NoError(t, err)
	records := []SoftLabeled{a, b, &SoftInstance{}}

	err = SetDistributionsFromMatrix(records[:2], mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5}))
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr), "got %v", err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Equal(t, []float64{1, 0}, a.ClassDistribution().Raw())

	err = SetDistributionsFromMatrix([]SoftLabeled{a, records[2]}, mat.NewDense(2, 2, nil))
	assert.True(t, errors.Is(err, errors.ErrNoDataset), "got %v", err)
	assert.Equal(t, []float64{1, 0}, a.ClassDistribution().Raw())
}

func TestBatchLogging(t *testing.T) {
	previous := log.GetLogger()
	t.Cleanup(func() { log.SetLogger(previous) })
	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	log.SetLogger(testLogger)

	ds := weatherDataset(t, 3)
	_, err := SoftenAll(labelledBatch(ds, 10))
	require.NoError(t, err)
	assert.True(t, testLogger.ContainsField(log.OperationKey, log.OperationSoften))
	assert.True(t, testLogger.ContainsField(log.WorkersKey, 1.0))

	a, err := NewSoftInstance(labelled(weatherDataset(t, 2), 0, 0))
	require.NoError(t, err)
	b, err := NewSoftInstance(labelled(ds, 0, 0))
	require.NoError(t, err)
	_, err = DistributionMatrix([]SoftLabeled{a, b})
	require.Error(t, err)
	assert.True(t, testLogger.ContainsField(log.OperationKey, log.OperationMatrix))
	assert.True(t, testLogger.ContainsField(log.ErrorCodeKey, log.ErrorDimensionMismatch))
	assert.True(t, testLogger.ContainsField(log.ErrorTypeKey, "DimensionError"))

	_, err = DistributionMatrix(nil)
	require.Error(t, err)
	assert.True(t, testLogger.ContainsField(log.ErrorCodeKey, log.ErrorEmptyData))
}
