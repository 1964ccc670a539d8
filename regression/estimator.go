package regression

import (
	"fmt"
	"math"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents y = a + b * x
	ModelTypeLinear ModelType = iota
	// ModelTypeLogarithmic represents y = a + b * ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents y = a * x^b
	ModelTypePower
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
}

func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given name, or
// ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	for mt, n := range modelTypeNames {
		if n == strings.ToLower(name) {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients [a, b].
	Coefficients() []float64
}

// NewEstimator creates an estimator of the given type from coefficients [a, b].
func NewEstimator(modelType ModelType, coeffs []float64) (Estimator, error) {
	if len(coeffs) != 2 {
		return nil, fmt.Errorf("%s model expects exactly 2 coefficients, got %d", modelType, len(coeffs))
	}

	a, b := coeffs[0], coeffs[1]
	switch modelType {
	case ModelTypeLinear:
		return LinearEstimator{A: a, B: b}, nil
	case ModelTypeLogarithmic:
		return LogarithmicEstimator{A: a, B: b}, nil
	case ModelTypePower:
		return PowerEstimator{A: a, B: b}, nil
	default:
		return nil, fmt.Errorf("unknown model type: %d", modelType)
	}
}

// LinearEstimator implements y = A + B * x.
type LinearEstimator struct{ A, B float64 }

func (e LinearEstimator) Estimate(x float64) float64 { return e.A + e.B*x }
func (e LinearEstimator) Type() ModelType            { return ModelTypeLinear }
func (e LinearEstimator) Coefficients() []float64    { return []float64{e.A, e.B} }

// LogarithmicEstimator implements y = A + B * ln(x). It returns +Inf for
// non-positive x.
type LogarithmicEstimator struct{ A, B float64 }

func (e LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return e.A + e.B*math.Log(x)
}
func (e LogarithmicEstimator) Type() ModelType         { return ModelTypeLogarithmic }
func (e LogarithmicEstimator) Coefficients() []float64 { return []float64{e.A, e.B} }

// PowerEstimator implements y = A * x^B. It returns +Inf for non-positive x.
type PowerEstimator struct{ A, B float64 }

func (e PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return e.A * math.Pow(x, e.B)
}
func (e PowerEstimator) Type() ModelType         { return ModelTypePower }
func (e PowerEstimator) Coefficients() []float64 { return []float64{e.A, e.B} }
