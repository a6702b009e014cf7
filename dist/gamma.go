package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma models the waiting time for Alpha consecutive arrivals of a Poisson
// process with arrival rate Beta. The scale of the distribution is 1/Beta.
type Gamma struct {
	Alpha float64 // shape
	Beta  float64 // rate
}

func (g Gamma) dist(src rand.Source) distuv.Gamma {
	return distuv.Gamma{Alpha: g.Alpha, Beta: g.Beta, Src: src}
}

// Draw generates n independent samples from the distribution. A nil src is
// replaced with a freshly time-seeded source. Alpha and Beta must both be
// positive; Draw does not guard against invalid parameters.
func (g Gamma) Draw(n int, src rand.Source) []float64 {
	d := g.dist(ensureSource(src))
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// PDF evaluates the probability density at each measurement in t.
func (g Gamma) PDF(t []float64) []float64 {
	d := g.dist(nil)
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = d.Prob(ti)
	}
	return out
}

// CDF evaluates the cumulative probability at each measurement in t.
func (g Gamma) CDF(t []float64) []float64 {
	d := g.dist(nil)
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = d.CDF(ti)
	}
	return out
}

// LogLike returns the log likelihood of i.i.d. measurements t. Non-positive
// Alpha or Beta yields -Inf, so an optimizer probing the parameter space
// sees such points as arbitrarily bad rather than crashing.
func (g Gamma) LogLike(t []float64) float64 {
	if g.Alpha <= 0 || g.Beta <= 0 {
		return math.Inf(-1)
	}

	d := g.dist(nil)
	var ll float64
	for _, ti := range t {
		ll += d.LogProb(ti)
	}
	return ll
}

// FitGamma computes the maximum likelihood estimate of the Gamma parameters
// for i.i.d. measurements t.
//
// The mean of the distribution is Alpha/Beta and the variance is
// Alpha/Beta², so plug-in moment estimates give the starting point for the
// search. A sample whose moments produce a non-finite guess (for example
// all-identical measurements, whose variance is zero) fails with a
// *ConvergenceError before the optimizer runs.
func FitGamma(t []float64) (Gamma, error) {
	tBar := stat.Mean(t, nil)
	betaGuess := tBar / stat.PopVariance(t, nil)
	alphaGuess := tBar * betaGuess

	x, err := maximizeLogLike(func(x []float64) float64 {
		return Gamma{Alpha: x[0], Beta: x[1]}.LogLike(t)
	}, []float64{alphaGuess, betaGuess})
	if err != nil {
		return Gamma{}, err
	}
	return Gamma{Alpha: x[0], Beta: x[1]}, nil
}
