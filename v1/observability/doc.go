// Package observability defines the operation-observer contract shared by
// the client packages in this module.
//
// Clients report each completed operation (duration, error, size) to an
// optional [Observer] configured on their Config. The metrics package
// provides a Prometheus-backed implementation; applications can plug in
// their own for tracing or auditing.
//
// A nil observer is always valid: clients skip reporting when none is set.
package observability
