package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ConvergenceError reports that a maximum likelihood search terminated
// without converging. Message preserves the optimizer's diagnostic.
type ConvergenceError struct {
	Message string
	Status  optimize.Status
}

func (e *ConvergenceError) Error() string {
	return "mle did not converge: " + e.Message
}

// maximizeLogLike runs a derivative-free Nelder-Mead search over the
// negated log likelihood starting from x0. Invalid parameter regions score
// -Inf log likelihood, so the simplex treats them as arbitrarily bad points
// rather than erroring out, which keeps the estimates implicitly positive.
func maximizeLogLike(logLike func(x []float64) float64, x0 []float64) ([]float64, error) {
	for _, v := range x0 {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, &ConvergenceError{
				Message: fmt.Sprintf("initial guess %v is not finite", x0),
			}
		}
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return -logLike(x) },
	}

	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, &ConvergenceError{Message: err.Error()}
	}
	if statusErr := result.Status.Err(); statusErr != nil {
		return nil, &ConvergenceError{Message: statusErr.Error(), Status: result.Status}
	}
	for _, v := range result.X {
		if math.IsNaN(v) {
			return nil, &ConvergenceError{
				Message: fmt.Sprintf("estimate %v is not a number", result.X),
				Status:  result.Status,
			}
		}
	}

	return result.X, nil
}
