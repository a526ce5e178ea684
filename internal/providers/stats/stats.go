package stats

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/providers/numtheory"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean.
func Mean(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate mean of empty list", common.ErrEmptyInput)
	}
	return stat.Mean(numbers, nil), nil
}

// Median calculates the median. Even-length input averages the two
// middle values after sorting.
func Median(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate median of empty list", common.ErrEmptyInput)
	}

	sorted := sortedCopy(numbers)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// ModeResult carries all tied most-frequent values, sorted
// ascending, along with their shared frequency.
type ModeResult struct {
	Values    []float64
	Frequency int
}

// Unique reports whether a single value holds the maximum frequency.
func (m ModeResult) Unique() bool {
	return len(m.Values) == 1
}

// Mode finds the most frequent values. Ties are all reported; use
// ModeSingle for the scalar convenience form.
func Mode(numbers []float64) (ModeResult, error) {
	if len(numbers) == 0 {
		return ModeResult{}, fmt.Errorf("%w: cannot calculate mode of empty list", common.ErrEmptyInput)
	}

	frequency := make(map[float64]int, len(numbers))
	maxFreq := 0
	for _, n := range numbers {
		frequency[n]++
		if frequency[n] > maxFreq {
			maxFreq = frequency[n]
		}
	}

	var values []float64
	for n, freq := range frequency {
		if freq == maxFreq {
			values = append(values, n)
		}
	}
	sort.Float64s(values)

	return ModeResult{Values: values, Frequency: maxFreq}, nil
}

// ModeSingle returns the lowest of the tied most-frequent values.
func ModeSingle(numbers []float64) (float64, error) {
	mode, err := Mode(numbers)
	if err != nil {
		return 0, err
	}
	return mode.Values[0], nil
}

// Variance calculates the sample variance (n-1 denominator).
func Variance(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 numbers to calculate variance", common.ErrInsufficientSample)
	}
	return stat.Variance(numbers, nil), nil
}

// StdDev calculates the sample standard deviation.
func StdDev(numbers []float64) (float64, error) {
	variance, err := Variance(numbers)
	if err != nil {
		return 0, fmt.Errorf("%w: need at least 2 numbers to calculate standard deviation", common.ErrInsufficientSample)
	}
	return gomath.Sqrt(variance), nil
}

// Percentile calculates the pth percentile using linear
// interpolation between order statistics at fractional rank
// (p/100)*(n-1).
func Percentile(numbers []float64, p float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate percentile of empty list", common.ErrEmptyInput)
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: percentile must be between 0 and 100", common.ErrInvalidArgument)
	}

	sorted := sortedCopy(numbers)
	n := len(sorted)

	rank := (p / 100) * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		return sorted[lower], nil
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight, nil
}

// Min returns the smallest value.
func Min(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot take min of empty list", common.ErrEmptyInput)
	}
	return floats.Min(numbers), nil
}

// Max returns the largest value.
func Max(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot take max of empty list", common.ErrEmptyInput)
	}
	return floats.Max(numbers), nil
}

// Sum adds all values. Zero for empty input.
func Sum(numbers []float64) float64 {
	return floats.Sum(numbers)
}

// Range returns max minus min.
func Range(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate range of empty list", common.ErrEmptyInput)
	}
	return floats.Max(numbers) - floats.Min(numbers), nil
}

// Correlation calculates the Pearson correlation coefficient.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: x and y must have same length", common.ErrInvalidArgument)
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 pairs to calculate correlation", common.ErrInsufficientSample)
	}
	return stat.Correlation(x, y, nil), nil
}

// Covariance calculates the sample covariance.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: x and y must have same length", common.ErrInvalidArgument)
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 pairs to calculate covariance", common.ErrInsufficientSample)
	}
	return stat.Covariance(x, y, nil), nil
}

// Summary bundles the descriptive statistics of a dataset.
type Summary struct {
	Count    int        `json:"count"`
	Sum      float64    `json:"sum"`
	Mean     float64    `json:"mean"`
	Median   float64    `json:"median"`
	Mode     ModeResult `json:"mode"`
	StdDev   float64    `json:"std_dev"`
	Variance float64    `json:"variance"`
	Min      float64    `json:"min"`
	Max      float64    `json:"max"`
	Range    float64    `json:"range"`
	Q1       float64    `json:"q1"`
	Q3       float64    `json:"q3"`
}

// Describe computes the full descriptive summary. Requires at least
// two values so the sample statistics are defined.
func Describe(numbers []float64) (Summary, error) {
	if len(numbers) == 0 {
		return Summary{}, fmt.Errorf("%w: no data available", common.ErrEmptyInput)
	}

	mean, err := Mean(numbers)
	if err != nil {
		return Summary{}, err
	}
	median, err := Median(numbers)
	if err != nil {
		return Summary{}, err
	}
	mode, err := Mode(numbers)
	if err != nil {
		return Summary{}, err
	}
	variance, err := Variance(numbers)
	if err != nil {
		return Summary{}, err
	}
	q1, err := Percentile(numbers, 25)
	if err != nil {
		return Summary{}, err
	}
	q3, err := Percentile(numbers, 75)
	if err != nil {
		return Summary{}, err
	}

	min := floats.Min(numbers)
	max := floats.Max(numbers)

	return Summary{
		Count:    len(numbers),
		Sum:      floats.Sum(numbers),
		Mean:     mean,
		Median:   median,
		Mode:     mode,
		StdDev:   gomath.Sqrt(variance),
		Variance: variance,
		Min:      min,
		Max:      max,
		Range:    max - min,
		Q1:       q1,
		Q3:       q3,
	}, nil
}

// RemoveOutliers drops values farther than threshold standard
// deviations from the mean. Inputs with fewer than three values are
// returned unchanged.
func RemoveOutliers(numbers []float64, threshold float64) []float64 {
	if len(numbers) < 3 {
		return append([]float64(nil), numbers...)
	}

	mean := stat.Mean(numbers, nil)
	stdDev := gomath.Sqrt(stat.Variance(numbers, nil))

	kept := make([]float64, 0, len(numbers))
	for _, n := range numbers {
		if gomath.Abs(n-mean) <= threshold*stdDev {
			kept = append(kept, n)
		}
	}
	return kept
}

// FilterPrimes keeps the primes, preserving order.
func FilterPrimes(numbers []int64) []int64 {
	var primes []int64
	for _, n := range numbers {
		if numtheory.IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// FilterEvens keeps the even numbers, preserving order.
func FilterEvens(numbers []int64) []int64 {
	var evens []int64
	for _, n := range numbers {
		if n%2 == 0 {
			evens = append(evens, n)
		}
	}
	return evens
}

// FilterOdds keeps the odd numbers, preserving order.
func FilterOdds(numbers []int64) []int64 {
	var odds []int64
	for _, n := range numbers {
		if n%2 != 0 {
			odds = append(odds, n)
		}
	}
	return odds
}

// SortAscending returns a sorted copy.
func SortAscending(numbers []float64) []float64 {
	return sortedCopy(numbers)
}

// SortDescending returns a reverse-sorted copy.
func SortDescending(numbers []float64) []float64 {
	sorted := sortedCopy(numbers)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return sorted
}

func sortedCopy(numbers []float64) []float64 {
	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)
	return sorted
}
