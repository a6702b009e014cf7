// Package dist models microtubule catastrophe waiting times under two
// competing generative models: a Gamma distribution, in which catastrophe
// follows alpha consecutive Poisson arrivals at a single rate, and a
// two-stage distribution, in which two sequential arrivals occur at
// distinct rates.
//
// Both distributions expose sampling, pointwise density and cumulative
// probability, log-likelihood, and maximum-likelihood fitting. Every
// operation is a pure computation over its inputs; Draw additionally
// consumes state from the caller's random source.
package dist
