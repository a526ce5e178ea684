// Package convert implements numeral base conversions and
// digit-level utilities (digit sums, Armstrong numbers). Malformed
// numeral strings fail with common.ErrInvalidFormat.
package convert
