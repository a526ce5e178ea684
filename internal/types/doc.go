// Package types defines the shared service, tool, and result types
// used by every provider and by the service registry.
package types
