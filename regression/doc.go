// Package regression fits growth curves to benchmark measurements.
//
// The benchmark harness measures the average time per query for a range of
// table sizes. Fit turns those (size, latency) pairs into a formula so that
// strategies can be compared by how they scale rather than at a single size:
// a flat search tree descent should follow the logarithmic model, a linear
// scan the linear one.
//
// # Model Types
//
//   - Linear: y = a + b * x
//   - Logarithmic: y = a + b * ln(x)
//   - Power: y = a * x^b
//
// Each model is fitted by least squares on transformed variables with
// gonum's stat.LinearRegression and ranked by R² computed in the original
// space. The best model is Result.BestFit.
//
// Example:
//
//	result, err := regression.Fit(sizes, nsPerQuery)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.BestFit.Formula)
//	predicted := result.BestFit.Estimator.Estimate(1 << 24)
package regression
