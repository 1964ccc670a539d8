package regression

import "fmt"

// Model is a fitted regression model.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients [a, b].
	Coefficients []float64
	// RSquared is the coefficient of determination in the original space.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator evaluates the fitted model.
	Estimator Estimator
}

func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of Fit.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains every fitted model ranked by R² (best first).
	AllModels []*Model
	// Points is the number of (x, y) pairs used.
	Points int
}

func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d, Points: %d}",
		r.BestFit, len(r.AllModels), r.Points)
}
