// Command mathforge wires the providers into a service registry,
// runs a self-check of known values, and logs a short showcase of
// the available tools. It exits non-zero when the self-check fails.
package main
