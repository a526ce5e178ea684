package tracker

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/providers/numtheory"
)

// Entry is one recorded calculation.
type Entry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// Calculator performs arithmetic while keeping an ordered history
// and a single memory slot. Each caller owns its own instance; all
// methods are safe for concurrent use.
type Calculator struct {
	mu         sync.Mutex
	history    []Entry
	memory     float64
	lastResult float64
}

// NewCalculator creates an empty calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) record(expression string, result float64) {
	c.history = append(c.history, Entry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now(),
	})
	c.lastResult = result
}

// Add adds two numbers.
func (c *Calculator) Add(a, b float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := a + b
	c.record(fmt.Sprintf("%g + %g", a, b), result)
	return result
}

// Subtract subtracts b from a.
func (c *Calculator) Subtract(a, b float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := a - b
	c.record(fmt.Sprintf("%g - %g", a, b), result)
	return result
}

// Multiply multiplies two numbers.
func (c *Calculator) Multiply(a, b float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := a * b
	c.record(fmt.Sprintf("%g * %g", a, b), result)
	return result
}

// Divide divides a by b.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: cannot divide by zero", common.ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := a / b
	c.record(fmt.Sprintf("%g / %g", a, b), result)
	return result, nil
}

// Power raises base to exponent.
func (c *Calculator) Power(base, exponent float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := gomath.Pow(base, exponent)
	c.record(fmt.Sprintf("%g ^ %g", base, exponent), result)
	return result
}

// Sqrt calculates the square root.
func (c *Calculator) Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: cannot take square root of negative number", common.ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := gomath.Sqrt(n)
	c.record(fmt.Sprintf("sqrt(%g)", n), result)
	return result, nil
}

// Factorial calculates n! for 0 <= n <= 20.
func (c *Calculator) Factorial(n int64) (int64, error) {
	result, err := numtheory.Factorial(n)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.record(fmt.Sprintf("%d!", n), float64(result))
	return result, nil
}

// LastResult returns the most recent calculation result.
func (c *Calculator) LastResult() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// History returns a copy of the calculation log in call order.
func (c *Calculator) History() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]Entry, len(c.history))
	copy(history, c.history)
	return history
}

// ClearHistory discards the calculation log.
func (c *Calculator) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

// StoreMemory stores a value in the memory slot.
func (c *Calculator) StoreMemory(value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memory = value
	c.record(fmt.Sprintf("M <- %g", value), value)
}

// RecallMemory returns the memory slot value.
func (c *Calculator) RecallMemory() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.record("M ->", c.memory)
	return c.memory
}

// ClearMemory resets the memory slot to zero.
func (c *Calculator) ClearMemory() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memory = 0
	c.record("M <- 0", 0)
}
