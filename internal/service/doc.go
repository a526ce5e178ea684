// Package service implements the in-process service registry.
//
// Providers register themselves with a Registry and expose their
// operations as tools addressed by "service.tool" IDs. The registry
// handles discovery, routing, and per-call metrics.
package service
