package stats

import (
	"context"
	"fmt"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/types"
)

// Provider exposes statistical operations as tools
type Provider struct {
	common.Ops
}

// NewProvider creates a statistics provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "stats",
		Name:        "Statistics Service",
		Description: "Statistical operations (mean, median, mode, dispersion, percentiles, filtering)",
		Category:    types.CategoryStats,
		Capabilities: []string{
			"central_tendency",
			"dispersion",
			"percentiles",
			"filtering",
		},
		Tools: []types.Tool{
			{
				ID:          "stats.mean",
				Name:        "Mean",
				Description: "Calculate arithmetic mean",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.median",
				Name:        "Median",
				Description: "Calculate median value",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.mode",
				Name:        "Mode",
				Description: "Find the most frequent value (lowest on ties)",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.modes",
				Name:        "All Modes",
				Description: "Find every value tied for the maximum frequency",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "stats.variance",
				Name:        "Variance",
				Description: "Calculate sample variance",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.stdev",
				Name:        "Standard Deviation",
				Description: "Calculate sample standard deviation",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.percentile",
				Name:        "Percentile",
				Description: "Calculate nth percentile with linear interpolation",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
					{Name: "p", Type: "number", Description: "Percentile (0-100)", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.min",
				Name:        "Minimum",
				Description: "Find minimum value",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.max",
				Name:        "Maximum",
				Description: "Find maximum value",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.sum",
				Name:        "Sum",
				Description: "Calculate sum of all numbers",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.range",
				Name:        "Range",
				Description: "Calculate range (max - min)",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.correlation",
				Name:        "Correlation",
				Description: "Calculate Pearson correlation coefficient",
				Parameters: []types.Parameter{
					{Name: "x", Type: "array", Description: "First dataset", Required: true},
					{Name: "y", Type: "array", Description: "Second dataset", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.covariance",
				Name:        "Covariance",
				Description: "Calculate sample covariance",
				Parameters: []types.Parameter{
					{Name: "x", Type: "array", Description: "First dataset", Required: true},
					{Name: "y", Type: "array", Description: "Second dataset", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "stats.summary",
				Name:        "Summary",
				Description: "Full descriptive summary (count, mean, quartiles, dispersion)",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers (at least 2)", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "stats.removeOutliers",
				Name:        "Remove Outliers",
				Description: "Drop values beyond a standard deviation threshold",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
					{Name: "threshold", Type: "number", Description: "Std-dev multiple (default 2)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "stats.filterPrimes",
				Name:        "Filter Primes",
				Description: "Keep only prime numbers",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of integers", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "stats.filterEvens",
				Name:        "Filter Evens",
				Description: "Keep only even numbers",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of integers", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "stats.filterOdds",
				Name:        "Filter Odds",
				Description: "Keep only odd numbers",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of integers", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "stats.sortAsc",
				Name:        "Sort Ascending",
				Description: "Return a sorted copy, smallest first",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "stats.sortDesc",
				Name:        "Sort Descending",
				Description: "Return a sorted copy, largest first",
				Parameters: []types.Parameter{
					{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
				},
				Returns: "array",
			},
		},
	}
}

// Execute routes to the matching operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "stats.mean":
		return p.unary(params, Mean)

	case "stats.median":
		return p.unary(params, Median)

	case "stats.mode":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		mode, err := Mode(numbers)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{
			"result":    mode.Values[0],
			"frequency": mode.Frequency,
			"unique":    mode.Unique(),
		})

	case "stats.modes":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		mode, err := Mode(numbers)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{
			"result":    mode.Values,
			"frequency": mode.Frequency,
		})

	case "stats.variance":
		return p.unary(params, Variance)

	case "stats.stdev":
		return p.unary(params, StdDev)

	case "stats.percentile":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		pct, ok := common.GetNumber(params, "p")
		if !ok {
			return common.Failure("p parameter required")
		}
		result, err := Percentile(numbers, pct)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": result})

	case "stats.min":
		return p.unary(params, Min)

	case "stats.max":
		return p.unary(params, Max)

	case "stats.sum":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": Sum(numbers)})

	case "stats.range":
		return p.unary(params, Range)

	case "stats.correlation":
		return p.binary(params, Correlation)

	case "stats.covariance":
		return p.binary(params, Covariance)

	case "stats.summary":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		summary, err := Describe(numbers)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{
			"count":    summary.Count,
			"sum":      summary.Sum,
			"mean":     summary.Mean,
			"median":   summary.Median,
			"mode":     summary.Mode.Values,
			"std_dev":  summary.StdDev,
			"variance": summary.Variance,
			"min":      summary.Min,
			"max":      summary.Max,
			"range":    summary.Range,
			"q1":       summary.Q1,
			"q3":       summary.Q3,
		})

	case "stats.removeOutliers":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		threshold, ok := common.GetNumber(params, "threshold")
		if !ok {
			threshold = 2.0
		}
		if threshold <= 0 {
			return common.Failure("threshold must be positive")
		}
		return common.Success(map[string]interface{}{"result": RemoveOutliers(numbers, threshold)})

	case "stats.filterPrimes":
		return p.intFilter(params, FilterPrimes)

	case "stats.filterEvens":
		return p.intFilter(params, FilterEvens)

	case "stats.filterOdds":
		return p.intFilter(params, FilterOdds)

	case "stats.sortAsc":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": SortAscending(numbers)})

	case "stats.sortDesc":
		numbers, err := p.numbers(params)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": SortDescending(numbers)})

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// numbers extracts and validates the "numbers" parameter
func (p *Provider) numbers(params map[string]interface{}) ([]float64, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok {
		return nil, fmt.Errorf("numbers array required")
	}
	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return nil, err
	}
	return numbers, nil
}

// unary runs a single-array statistic
func (p *Provider) unary(params map[string]interface{}, fn func([]float64) (float64, error)) (*types.Result, error) {
	numbers, err := p.numbers(params)
	if err != nil {
		return common.FailureErr(err)
	}
	result, err := fn(numbers)
	if err != nil {
		return common.FailureErr(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// binary runs a paired-array statistic
func (p *Provider) binary(params map[string]interface{}, fn func(x, y []float64) (float64, error)) (*types.Result, error) {
	x, ok := common.GetNumbers(params, "x")
	if !ok {
		return common.Failure("x array required")
	}
	y, ok := common.GetNumbers(params, "y")
	if !ok {
		return common.Failure("y array required")
	}
	if err := common.ValidateNumbers(x, "x"); err != nil {
		return common.FailureErr(err)
	}
	if err := common.ValidateNumbers(y, "y"); err != nil {
		return common.FailureErr(err)
	}
	result, err := fn(x, y)
	if err != nil {
		return common.FailureErr(err)
	}
	return common.Success(map[string]interface{}{"result": result})
}

// intFilter runs an order-preserving integer filter
func (p *Provider) intFilter(params map[string]interface{}, fn func([]int64) []int64) (*types.Result, error) {
	numbers, ok := common.GetInts(params, "numbers")
	if !ok {
		return common.Failure("numbers parameter required (integer array)")
	}
	return common.Success(map[string]interface{}{"result": fn(numbers)})
}
