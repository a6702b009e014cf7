// catfit fits waiting-time measurements against the Gamma and two-stage
// catastrophe models and reports the maximum likelihood estimates.
//
// Measurements are whitespace-separated non-negative floats, read from the
// file given with -input or from stdin. LOG_LEVEL and LOG_FORMAT control
// logging.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/lhchen/catastrophe/dist"
)

func main() {
	inputFile := flag.String("input", "", "file of waiting-time measurements (default stdin)")
	model := flag.String("model", "both", "model to fit: gamma, twostage or both")
	flag.Parse()

	logger := newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	times, err := readMeasurements(*inputFile)
	if err != nil {
		logger.Error("readMeasurements", err)
		os.Exit(1)
	}
	logger.Debug("loaded measurements", "n", humanize.Comma(int64(len(times))))

	switch *model {
	case "gamma":
		fitGamma(logger, times)
	case "twostage":
		fitTwoStage(logger, times)
	case "both":
		fitGamma(logger, times)
		fitTwoStage(logger, times)
	default:
		logger.Error("unknown model", errors.Errorf("%q (want gamma, twostage or both)", *model))
		os.Exit(1)
	}
}

func fitGamma(logger *slog.Logger, times []float64) {
	g, err := dist.FitGamma(times)
	if err != nil {
		logger.Error("FitGamma", err)
		os.Exit(1)
	}
	logger.Info("gamma fit", "alpha", g.Alpha, "beta", g.Beta, "logLike", g.LogLike(times))
	fmt.Printf("gamma\talpha=%.6g\tbeta=%.6g\n", g.Alpha, g.Beta)
}

func fitTwoStage(logger *slog.Logger, times []float64) {
	d, err := dist.FitTwoStage(times)
	if err != nil {
		logger.Error("FitTwoStage", err)
		os.Exit(1)
	}
	logger.Info("two-stage fit", "beta1", d.Beta1, "beta2", d.Beta2, "logLike", d.LogLike(times))
	fmt.Printf("twostage\tbeta1=%.6g\tbeta2=%.6g\n", d.Beta1, d.Beta2)
}

func readMeasurements(path string) ([]float64, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening measurements file")
		}
		defer f.Close()
	}

	var times []float64
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing measurement %q", scanner.Text())
		}
		if v < 0 {
			return nil, errors.Errorf("negative waiting time %v", v)
		}
		times = append(times, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading measurements")
	}
	if len(times) == 0 {
		return nil, errors.New("no measurements")
	}

	return times, nil
}
