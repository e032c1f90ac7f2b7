// Package server is the optional HTTP status surface: health probe,
// live scan progress, the latest catalog as JSON, and Prometheus
// metrics. State flows one way, from the scan goroutine into the
// server; handlers only read it.
package server
