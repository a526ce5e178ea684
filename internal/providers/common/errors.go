package common

import "errors"

// Failure taxonomy shared by every provider. Pure functions return
// these (wrapped with detail); the tool layer flattens them into
// Result errors.
var (
	// ErrInvalidArgument marks inputs outside a function's domain,
	// such as negative values or mismatched sequence lengths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput marks aggregate operations invoked on zero
	// elements.
	ErrEmptyInput = errors.New("empty input")

	// ErrInsufficientSample marks sample statistics invoked on fewer
	// than two elements.
	ErrInsufficientSample = errors.New("insufficient sample")

	// ErrInvalidFormat marks malformed numeral strings.
	ErrInvalidFormat = errors.New("invalid format")
)
