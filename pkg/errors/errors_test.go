package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name    string
		axis    int
		wantMsg string
	}{
		{
			name:    "rows",
			axis:    0,
			wantMsg: "softlabel: SetDistributionsFromMatrix: dimension mismatch on axis 0 (rows). Expected 10, got 9",
		},
		{
			name:    "classes",
			axis:    1,
			wantMsg: "softlabel: SetDistributionsFromMatrix: dimension mismatch on axis 1 (classes). Expected 10, got 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("SetDistributionsFromMatrix", 10, 9, tt.axis)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
		})
	}
}

func TestNewDistributionLengthError(t *testing.T) {
	dist := []float64{0.25, 0.75}
	err := NewDistributionLengthError(3, dist)

	want := "softlabel: class distribution of incorrect length: expected 3 classes, got 2 [0.25 0.75]"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var lenErr *DistributionLengthError
	if !As(err, &lenErr) {
		t.Fatal("Error should be castable to *DistributionLengthError")
	}
	if &lenErr.Distribution[0] != &dist[0] {
		t.Error("Error should carry the offending distribution")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("NewSoftInstance", "class value 3 out of range [0, 3)")

	want := "softlabel: NewSoftInstance: class value 3 out of range [0, 3)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("class_index", "out of range", 7)

	want := "softlabel: validation failed for parameter 'class_index': out of range (got: 7)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var lenErr *DistributionLengthError
	if !As(NewDistributionLengthError(2, []float64{1}), &lenErr) {
		t.Fatal("expected *DistributionLengthError")
	}
	logger.Error().EmbedObject(lenErr).Msg("rejected")

	out := buf.String()
	for _, want := range []string{`"type":"DistributionLengthError"`, `"expected":2`, `"got":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("normalize", []float64{0.1, 0.9}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	nan := []float64{0.1, zeroNaN()}
	err := CheckNumericalStability("normalize", nan)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected *NumericalInstabilityError, got %v", err)
	}
	if numErr.Operation != "normalize" {
		t.Errorf("Operation = %s, want normalize", numErr.Operation)
	}
}

func zeroNaN() float64 {
	zero := 0.0
	return zero / zero
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrNoDataset, "in NewSoftInstance")

	if !Is(wrapped, ErrNoDataset) {
		t.Error("Expected Is(wrapped, ErrNoDataset) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in NewSoftInstance") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "DistributionMatrix", 10, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in DistributionMatrix: expected 10, got 0") {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}
