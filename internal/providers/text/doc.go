// Package text implements pure string transformations and counters.
// All functions are Unicode-aware and operate rune-by-rune.
package text
