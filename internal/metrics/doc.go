// Package metrics defines the Prometheus collectors exported by the
// catalog scanner. All metrics are registered at package init via
// promauto and served by the optional status server.
package metrics
