// Package monitoring provides Prometheus metrics for tool execution
// and registry state.
package monitoring
