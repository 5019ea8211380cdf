// Package model defines what soft-label consumers plug in: estimators that
// produce a class distribution for a record, and the pass that writes those
// distributions back into soft-labelled records.
package model

import (
	"fmt"

	"github.com/YuminosukeSato/softlabel/core/instance"
	"github.com/YuminosukeSato/softlabel/pkg/errors"
	"github.com/YuminosukeSato/softlabel/pkg/log"
)

// DistributionEstimator predicts a class distribution for a record.
type DistributionEstimator interface {
	// DistributionFor returns one probability per class of inst's dataset.
	DistributionFor(inst *instance.Instance) ([]float64, error)
}

// SoftFitter is trained directly on soft-labelled records.
type SoftFitter interface {
	FitSoft(records []instance.SoftLabeled) error
}

// SoftClassifier is the estimator an EM-style driver alternates with.
type SoftClassifier interface {
	SoftFitter
	DistributionEstimator
}

// Relabel asks est for a fresh distribution for every record and installs it
// with SetClassDistribution. It stops at the first failure; records before
// it keep their new distributions. A panicking estimator is reported as an
// error.
func Relabel(est DistributionEstimator, records []instance.SoftLabeled) error {
	logger := log.GetLogger().With(
		log.ComponentKey, "model",
		log.OperationKey, log.OperationRelabel,
		log.EstimatorKey, fmt.Sprintf("%T", est),
	)

	for i, rec := range records {
		err := errors.SafeExecute("DistributionFor", func() error {
			dist, err := est.DistributionFor(rec.Base())
			if err != nil {
				return err
			}
			return rec.SetClassDistribution(dist)
		})
		if err != nil {
			logger.Error("relabel failed", err,
				log.RecordKey, i,
				log.ErrorCodeKey, log.ErrorEstimatorFailure,
			)
			return errors.Wrapf(err, "relabel record %d", i)
		}
	}

	logger.Debug("relabel completed", log.SamplesKey, len(records))
	return nil
}
