// Package stats implements descriptive statistics on float64 slices,
// built on gonum.org/v1/gonum/stat and gonum.org/v1/gonum/floats.
//
// Sample statistics (variance, standard deviation, covariance) use
// the n-1 denominator. Percentile interpolates linearly between
// order statistics, matching the NumPy "linear" method. Mode returns
// a tagged ModeResult instead of switching between scalar and slice
// shapes on ties.
package stats
