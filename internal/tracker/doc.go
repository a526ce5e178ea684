// Package tracker provides the stateful companion types to the pure
// providers: a Calculator with an ordered operation history and
// memory slot, and a Dataset that accumulates observations for
// descriptive statistics. Instances are caller-owned; there is no
// process-wide state.
package tracker
