// Package metrics はソフトラベル付きレコードの集計指標を提供する
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/softlabel/core/instance"
	"github.com/YuminosukeSato/softlabel/pkg/errors"
)

// ClassMass は各クラスに割り当てられた確率質量をレコードの重み付きで合計する
func ClassMass(records []instance.SoftLabeled) ([]float64, error) {
	if len(records) == 0 {
		return nil, errors.NewValueError("ClassMass", "no records")
	}

	n := records[0].ClassDistribution().Len()
	mass := make([]float64, n)
	for i, r := range records {
		d, err := distributionOf("ClassMass", i, r)
		if err != nil {
			return nil, err
		}
		if d.Len() != n {
			return nil, errors.Wrapf(errors.NewDimensionError("ClassMass", n, d.Len(), 1), "record %d", i)
		}
		// mass += weight * p
		floats.AddScaled(mass, r.Base().Weight(), d.Raw())
	}
	return mass, nil
}

// MeanEntropy は分布のシャノンエントロピー（nat）の重み付き平均を計算する
func MeanEntropy(records []instance.SoftLabeled) (float64, error) {
	if len(records) == 0 {
		return 0, errors.NewValueError("MeanEntropy", "no records")
	}

	entropies := make([]float64, len(records))
	weights := make([]float64, len(records))
	for i, r := range records {
		d, err := distributionOf("MeanEntropy", i, r)
		if err != nil {
			return 0, err
		}
		entropies[i] = stat.Entropy(d.Raw())
		weights[i] = r.Base().Weight()
	}
	if floats.Sum(weights) == 0 {
		return 0, errors.NewValueError("MeanEntropy", "total weight is zero")
	}
	return stat.Mean(entropies, weights), nil
}

// HardAgreement はクラスが既知のレコードのうち、分布の最頻クラスが
// 既知のクラスと一致する割合（重み付き）を計算する
func HardAgreement(records []instance.SoftLabeled) (float64, error) {
	const op = "HardAgreement"
	var agree, total float64
	for i, r := range records {
		base := r.Base()
		missing, err := base.ClassIsMissing()
		if err != nil {
			return 0, errors.Wrapf(err, "record %d", i)
		}
		if missing {
			continue
		}
		d, err := distributionOf(op, i, r)
		if err != nil {
			return 0, err
		}
		v, err := base.ClassValue()
		if err != nil {
			return 0, errors.Wrapf(err, "record %d", i)
		}
		class, ok := instance.LabelIndex(v, d.Len())
		if !ok {
			return 0, errors.Wrapf(errors.NewValueError(op, "class value is not a label index"), "record %d", i)
		}
		total += base.Weight()
		if d.ArgMax() == class {
			agree += base.Weight()
		}
	}

	if total == 0 {
		return 0, errors.NewValueError("HardAgreement", "no records with a known class")
	}
	return agree / total, nil
}

// distributionOf は分布を持たないレコード（ゼロ値のSoftInstanceなど）を拒否する
func distributionOf(op string, i int, r instance.SoftLabeled) (*instance.Distribution, error) {
	d := r.ClassDistribution()
	if d.Len() == 0 {
		return nil, errors.Wrapf(errors.Wrap(errors.ErrEmptyData, op), "record %d", i)
	}
	return d, nil
}
