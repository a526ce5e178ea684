// Package common holds the helpers shared by all providers: result
// construction, parameter extraction with numeric coercion, NaN and
// Infinity guards, and the failure taxonomy sentinels.
package common
