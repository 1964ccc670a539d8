package regression

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/internal/options"
)

// FitConfig selects the candidate models of Fit.
type FitConfig struct {
	models []ModelType
}

// FitOption configures Fit.
type FitOption = options.Option[*FitConfig]

// WithModels restricts Fit to the given model types.
func WithModels(models ...ModelType) FitOption {
	return options.New(func(c *FitConfig) error {
		for _, m := range models {
			if _, ok := modelTypeNames[m]; !ok {
				return fmt.Errorf("unknown model type: %d", m)
			}
		}
		c.models = slices.Clone(models)

		return nil
	})
}

// Fit fits every candidate model to the points (x[i], y[i]) and ranks them by R².
//
// Models whose transform is undefined for the data (ln of a non-positive
// value) or whose fit degenerates are left out.
//
// Returns:
//   - *Result: best-fit model and all fitted candidates
//   - error: errs.ErrInsufficientData if there are fewer than two points, the
//     slices differ in length, or no model could be fitted
func Fit(x, y []float64, opts ...FitOption) (*Result, error) {
	cfg := &FitConfig{models: []ModelType{ModelTypeLinear, ModelTypeLogarithmic, ModelTypePower}}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrInsufficientData, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d points", errs.ErrInsufficientData, len(x))
	}

	models := make([]*Model, 0, len(cfg.models))
	for _, mt := range cfg.models {
		if m := fitModel(mt, x, y); m != nil {
			models = append(models, m)
		}
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("%w: no model could be fitted", errs.ErrInsufficientData)
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		return cmp.Compare(b.RSquared, a.RSquared)
	})

	return &Result{BestFit: models[0], AllModels: models, Points: len(x)}, nil
}

func fitModel(mt ModelType, x, y []float64) *Model {
	var tx, ty []float64
	switch mt {
	case ModelTypeLinear:
		tx, ty = x, y
	case ModelTypeLogarithmic:
		tx = logAll(x)
		ty = y
	case ModelTypePower:
		tx, ty = logAll(x), logAll(y)
	}
	if tx == nil || ty == nil {
		return nil
	}

	alpha, beta := stat.LinearRegression(tx, ty, nil, false)

	a, b := alpha, beta
	if mt == ModelTypePower {
		a = math.Exp(alpha)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil
	}

	estimator, err := NewEstimator(mt, []float64{a, b})
	if err != nil {
		return nil
	}

	predicted := make([]float64, len(x))
	for i, xi := range x {
		predicted[i] = estimator.Estimate(xi)
	}

	r2 := stat.RSquaredFrom(predicted, y, nil)
	if math.IsNaN(r2) {
		r2 = 0
	}

	return &Model{
		Type:         mt,
		Coefficients: []float64{a, b},
		RSquared:     r2,
		RMSE:         floats.Distance(predicted, y, 2) / math.Sqrt(float64(len(y))),
		Formula:      formula(mt, a, b),
		Estimator:    estimator,
	}
}

// logAll returns ln of every value, or nil if any value is not positive.
func logAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v <= 0 {
			return nil
		}
		out[i] = math.Log(v)
	}

	return out
}

func formula(mt ModelType, a, b float64) string {
	switch mt {
	case ModelTypeLogarithmic:
		return fmt.Sprintf("y = %.2f + %.2f * ln(x)", a, b)
	case ModelTypePower:
		return fmt.Sprintf("y = %.2f * x^%.3f", a, b)
	default:
		return fmt.Sprintf("y = %.2f + %.4f * x", a, b)
	}
}
