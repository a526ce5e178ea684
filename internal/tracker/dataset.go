package tracker

import (
	"sync"

	"github.com/mathforge/mathforge/internal/providers/stats"
)

// Dataset accumulates observations and answers descriptive
// statistics over them. Each caller owns its own instance; all
// methods are safe for concurrent use.
type Dataset struct {
	mu     sync.RWMutex
	values []float64
}

// NewDataset creates a dataset seeded with the given values.
func NewDataset(values ...float64) *Dataset {
	d := &Dataset{}
	d.Add(values...)
	return d
}

// Add appends observations.
func (d *Dataset) Add(values ...float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = append(d.values, values...)
}

// Clear discards all observations.
func (d *Dataset) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = nil
}

// Values returns a copy of the observations in insertion order.
func (d *Dataset) Values() []float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	values := make([]float64, len(d.values))
	copy(values, d.values)
	return values
}

// Count returns the number of observations.
func (d *Dataset) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.values)
}

// Mean returns the arithmetic mean of the observations.
func (d *Dataset) Mean() (float64, error) {
	return stats.Mean(d.snapshot())
}

// Median returns the median of the observations.
func (d *Dataset) Median() (float64, error) {
	return stats.Median(d.snapshot())
}

// Mode returns the most frequent observations.
func (d *Dataset) Mode() (stats.ModeResult, error) {
	return stats.Mode(d.snapshot())
}

// StdDev returns the sample standard deviation.
func (d *Dataset) StdDev() (float64, error) {
	return stats.StdDev(d.snapshot())
}

// Variance returns the sample variance.
func (d *Dataset) Variance() (float64, error) {
	return stats.Variance(d.snapshot())
}

// Range returns max minus min.
func (d *Dataset) Range() (float64, error) {
	return stats.Range(d.snapshot())
}

// Percentile returns the pth percentile.
func (d *Dataset) Percentile(p float64) (float64, error) {
	return stats.Percentile(d.snapshot(), p)
}

// Summary returns the full descriptive summary.
func (d *Dataset) Summary() (stats.Summary, error) {
	return stats.Describe(d.snapshot())
}

// snapshot copies the values under the read lock so statistics run
// on a stable view.
func (d *Dataset) snapshot() []float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	values := make([]float64, len(d.values))
	copy(values, d.values)
	return values
}
