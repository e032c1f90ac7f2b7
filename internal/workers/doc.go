/*
Package workers provides utilities for determining optimal worker pool sizes
in containerized environments.

When running in a container, the number of available CPUs may be limited by
cgroup constraints. Go 1.19+ sets GOMAXPROCS from the container CPU limit,
while runtime.NumCPU() still reports the host machine's count. The helpers
here size worker pools from GOMAXPROCS so the scanner respects container
resource limits.

	// CPU-heavy work (page rendering, JPEG encoding)
	n := workers.ForCPU(8)

	// I/O-heavy work (walking large trees on network storage)
	n := workers.ForIO(16)

	// Mixed work (document extraction: parse + read)
	n := workers.ForMixed(12)

All functions respect the SCAN_WORKERS environment variable, allowing
operators to override the automatic calculation.
*/
package workers
