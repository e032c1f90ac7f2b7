// Package config holds the explicit configuration for the scan pipeline:
// stage page limits, the keyword stop-word set, thumbnail parameters and
// output locations. Defaults match the scanner's historical behavior; an
// optional YAML file and a handful of environment variables override them.
//
// It also implements the small last-used-folder contract consumed by the
// presentation collaborator.
package config
