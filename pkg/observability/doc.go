/*
Package observability provides tools for monitoring a Canopy machine.

It exposes a Prometheus metrics collector driven by the engine's lifecycle
hooks: state entries and exits, committed transitions, truncated resolution
cycles, ticks, and the resolved depth distribution.
*/
package observability
