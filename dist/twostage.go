package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Below these tolerances the direct two-rate density loses its leading
// digits to cancellation, so a near-equal pair is evaluated as the exact
// equal-rate limit instead.
const (
	rateAbsTol = 1e-8
	rateRelTol = 1e-5
)

// TwoStage models the waiting time for two consecutive Poisson arrivals,
// the first at rate Beta1 and the second at rate Beta2. The second stage
// cannot begin before the first arrival, so the total wait is the sum of
// the two stage waits.
//
// The density is symmetric under swapping Beta1 and Beta2, so a fit may
// report the two rates in either order.
type TwoStage struct {
	Beta1 float64
	Beta2 float64
}

// ratesIndistinct reports whether Beta1 and Beta2 are numerically
// indistinguishable. At exactly equal rates the two-stage wait is
// Gamma(shape=2, rate=Beta1).
func (d TwoStage) ratesIndistinct() bool {
	return scalar.EqualWithinAbsOrRel(d.Beta1, d.Beta2, rateAbsTol, rateRelTol)
}

func (d TwoStage) equalRateLimit() Gamma {
	return Gamma{Alpha: 2, Beta: d.Beta1}
}

// Draw generates n independent samples from the distribution by summing a
// stage-one and a stage-two exponential wait for each sample. A nil src is
// replaced with a freshly time-seeded source. Beta1 and Beta2 must both be
// positive; Draw does not guard against invalid parameters.
func (d TwoStage) Draw(n int, src rand.Source) []float64 {
	src = ensureSource(src)
	stage1 := distuv.Exponential{Rate: d.Beta1, Src: src}
	stage2 := distuv.Exponential{Rate: d.Beta2, Src: src}

	out := make([]float64, n)
	for i := range out {
		out[i] = stage1.Rand() + stage2.Rand()
	}
	return out
}

// PDF evaluates the probability density at each measurement in t. Rates
// within tolerance of each other are evaluated as the Gamma(shape=2) limit
// rather than through the singular closed form.
func (d TwoStage) PDF(t []float64) []float64 {
	if d.ratesIndistinct() {
		return d.equalRateLimit().PDF(t)
	}

	c := d.Beta1 * d.Beta2 / (d.Beta2 - d.Beta1)
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = c * (math.Exp(-d.Beta1*ti) - math.Exp(-d.Beta2*ti))
	}
	return out
}

// CDF evaluates the cumulative probability at each measurement in t, with
// the same equal-rate handling as PDF.
func (d TwoStage) CDF(t []float64) []float64 {
	if d.ratesIndistinct() {
		return d.equalRateLimit().CDF(t)
	}

	c := d.Beta1 * d.Beta2 / (d.Beta2 - d.Beta1)
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = c * ((1-math.Exp(-d.Beta1*ti))/d.Beta1 - (1-math.Exp(-d.Beta2*ti))/d.Beta2)
	}
	return out
}

// LogLike returns the log likelihood of i.i.d. measurements t. Non-positive
// Beta1 or Beta2 yields -Inf. Indistinguishable rates are scored with the
// Gamma(shape=2) log density, which is the exact equal-rate limit.
func (d TwoStage) LogLike(t []float64) float64 {
	if d.Beta1 <= 0 || d.Beta2 <= 0 {
		return math.Inf(-1)
	}

	if d.ratesIndistinct() {
		return d.equalRateLimit().LogLike(t)
	}

	var ll float64
	for _, p := range d.PDF(t) {
		ll += math.Log(p)
	}
	return ll
}

// FitTwoStage computes the maximum likelihood estimate of the two stage
// rates for i.i.d. measurements t.
//
// The starting point assumes both stages share one average rate: the
// expected total wait is 1/Beta1 + 1/Beta2, so each rate is guessed as
// twice the average rate 1/mean(t).
func FitTwoStage(t []float64) (TwoStage, error) {
	betaGuess := 2 / stat.Mean(t, nil)

	x, err := maximizeLogLike(func(x []float64) float64 {
		return TwoStage{Beta1: x[0], Beta2: x[1]}.LogLike(t)
	}, []float64{betaGuess, betaGuess})
	if err != nil {
		return TwoStage{}, err
	}
	return TwoStage{Beta1: x[0], Beta2: x[1]}, nil
}
