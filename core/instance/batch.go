package instance

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/softlabel/core/parallel"
	"github.com/YuminosukeSato/softlabel/pkg/errors"
	"github.com/YuminosukeSato/softlabel/pkg/log"
)

// ParallelThreshold is the batch size above which SoftenAll fans out.
var ParallelThreshold = 1024

// SoftenAll builds one SoftInstance per record with NewSoftInstance. Each
// result shares its source's values handle.
func SoftenAll(src []*Instance) ([]*SoftInstance, error) {
	out := make([]*SoftInstance, len(src))
	err := parallel.ParallelizeWithThreshold(context.Background(), len(src), ParallelThreshold,
		func(ctx context.Context, start, end int) error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := NewSoftInstance(src[i])
				if err != nil {
					return errors.Wrapf(err, "record %d", i)
				}
				out[i] = s
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	workers := 1
	if len(src) > ParallelThreshold {
		workers = parallel.Workers(len(src))
	}
	logBatch(log.OperationSoften, src, log.WorkersKey, workers)
	return out, nil
}

// SoftenAllRandom builds one SoftInstance per record with
// NewRandomSoftInstance, drawing from rng in record order.
func SoftenAllRandom(src []*Instance, rng Source) ([]*SoftInstance, error) {
	out := make([]*SoftInstance, len(src))
	for i, inst := range src {
		s, err := NewRandomSoftInstance(inst, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		out[i] = s
	}

	logBatch(log.OperationSoftenRandom, src, log.WorkersKey, 1)
	return out, nil
}

func logBatch(op string, src []*Instance, extra ...any) {
	logger := log.GetLogger()
	if len(src) == 0 || !logger.Enabled(context.Background(), log.LevelDebug) {
		return
	}
	fields := []any{
		log.ComponentKey, "instance",
		log.OperationKey, op,
		log.SamplesKey, len(src),
	}
	if ds := src[0].Dataset(); ds != nil {
		fields = append(fields, log.DatasetKey, ds.Name(), log.ClassesKey, ds.NumClasses())
	}
	fields = append(fields, extra...)
	logger.Debug("soft labels assigned", fields...)
}

// DistributionMatrix stacks the records' distributions into a
// len(records) x classes matrix. The matrix holds copies.
func DistributionMatrix(records []SoftLabeled) (*mat.Dense, error) {
	const op = "DistributionMatrix"
	if len(records) == 0 || records[0].ClassDistribution().Len() == 0 {
		err := errors.Wrap(errors.ErrEmptyData, op)
		logRejected(log.OperationMatrix, log.ErrorEmptyData, err)
		return nil, err
	}

	cols := records[0].ClassDistribution().Len()
	m := mat.NewDense(len(records), cols, nil)
	for i, r := range records {
		d := r.ClassDistribution()
		if d.Len() != cols {
			err := errors.Wrapf(errors.NewDimensionError(op, cols, d.Len(), 1), "record %d", i)
			logRejected(log.OperationMatrix, log.ErrorDimensionMismatch, err, log.RecordKey, i)
			return nil, err
		}
		m.SetRow(i, d.Raw())
	}
	return m, nil
}

// SetDistributionsFromMatrix installs row i of m as the distribution of
// records[i]. Each row is copied into a fresh slice, so records never share
// storage with m or with each other afterwards. Every record is checked
// before the first one is written; on error no record is modified.
func SetDistributionsFromMatrix(records []SoftLabeled, m mat.Matrix) error {
	const op = "SetDistributionsFromMatrix"
	rows, cols := m.Dims()
	if rows != len(records) {
		err := errors.NewDimensionError(op, len(records), rows, 0)
		logRejected(log.OperationMatrix, log.ErrorDimensionMismatch, err)
		return err
	}
	for i, r := range records {
		if r.Base().Dataset() == nil {
			return errors.Wrapf(errors.Wrap(errors.ErrNoDataset, op), "record %d", i)
		}
		if n := r.NumClasses(); n != cols {
			err := errors.Wrapf(errors.NewDimensionError(op, n, cols, 1), "record %d", i)
			logRejected(log.OperationMatrix, log.ErrorDimensionMismatch, err, log.RecordKey, i)
			return err
		}
	}
	for i, r := range records {
		row := mat.Row(nil, i, m)
		if err := r.SetClassDistribution(row); err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
	}
	return nil
}

func logRejected(op, code string, err error, extra ...any) {
	errType := "error"
	var dimErr *errors.DimensionError
	if errors.As(err, &dimErr) {
		errType = "DimensionError"
	}
	fields := append([]any{err,
		log.ComponentKey, "instance",
		log.OperationKey, op,
		log.ErrorCodeKey, code,
		log.ErrorTypeKey, errType,
	}, extra...)
	log.GetLogger().Warn("distribution matrix rejected", fields...)
}
