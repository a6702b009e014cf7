package dist

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestGammaCDFShape(t *testing.T) {
	g := Gamma{Alpha: 2, Beta: 3}

	grid := make([]float64, 200)
	for i := range grid {
		grid[i] = float64(i) * 0.1
	}
	cdf := g.CDF(grid)

	if cdf[0] != 0 {
		t.Errorf("CDF(0) = %v, want 0", cdf[0])
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i] < cdf[i-1] {
			t.Errorf("CDF decreasing at t=%v: %v < %v", grid[i], cdf[i], cdf[i-1])
		}
	}

	tail := g.CDF([]float64{100})[0]
	if !scalar.EqualWithinAbs(tail, 1, 1e-9) {
		t.Errorf("CDF(100) = %v, want ~1", tail)
	}
}

func TestGammaPDFIntegratesToOne(t *testing.T) {
	g := Gamma{Alpha: 2, Beta: 3}

	mass := quad.Fixed(func(x float64) float64 {
		return g.PDF([]float64{x})[0]
	}, 0, 50, 1000, nil, 0)

	if !scalar.EqualWithinAbs(mass, 1, 1e-6) {
		t.Errorf("integrated PDF mass = %v, want 1", mass)
	}
}

func TestGammaLogLikeMatchesPDF(t *testing.T) {
	g := Gamma{Alpha: 2.5, Beta: 1.7}
	ts := []float64{0.1, 0.5, 1, 2, 3.5, 7}

	var want float64
	for _, p := range g.PDF(ts) {
		want += math.Log(p)
	}

	got := g.LogLike(ts)
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-12) {
		t.Errorf("LogLike = %v, want sum of log PDF = %v", got, want)
	}
}

func TestGammaLogLikeInvalidParams(t *testing.T) {
	ts := []float64{1, 2, 3}

	for _, g := range []Gamma{
		{Alpha: -1, Beta: 2},
		{Alpha: 2, Beta: -1},
		{Alpha: 0, Beta: 1},
		{Alpha: 1, Beta: 0},
	} {
		if ll := g.LogLike(ts); !math.IsInf(ll, -1) {
			t.Errorf("LogLike(%+v) = %v, want -Inf", g, ll)
		}
	}
}

func TestFitGammaRecoversParameters(t *testing.T) {
	truth := Gamma{Alpha: 3, Beta: 2}
	src := rand.NewSource(1)

	sample := truth.Draw(5000, src)
	fit, err := FitGamma(sample)
	if err != nil {
		t.Fatalf("FitGamma: %v", err)
	}

	if !scalar.EqualWithinRel(fit.Alpha, truth.Alpha, 0.1) {
		t.Errorf("fitted Alpha = %v, want ~%v", fit.Alpha, truth.Alpha)
	}
	if !scalar.EqualWithinRel(fit.Beta, truth.Beta, 0.1) {
		t.Errorf("fitted Beta = %v, want ~%v", fit.Beta, truth.Beta)
	}

	t.Logf("fitted alpha=%.4f beta=%.4f from truth alpha=%v beta=%v",
		fit.Alpha, fit.Beta, truth.Alpha, truth.Beta)
}

func TestFitGammaDegenerateSample(t *testing.T) {
	sample := make([]float64, 50)
	for i := range sample {
		sample[i] = 2.5 // zero variance
	}

	fit, err := FitGamma(sample)
	if err == nil {
		if math.IsNaN(fit.Alpha) || math.IsNaN(fit.Beta) {
			t.Fatalf("FitGamma returned NaN estimate %+v without error", fit)
		}
		t.Skipf("degenerate sample converged to boundary estimate %+v", fit)
	}

	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("FitGamma error = %v, want *ConvergenceError", err)
	}
	if convErr.Message == "" {
		t.Error("ConvergenceError carries no diagnostic message")
	}
}
