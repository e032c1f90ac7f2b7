package workers

import (
	"os"
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	// Save and restore original environment
	originalEnv := os.Getenv("SCAN_WORKERS")
	defer func() {
		if originalEnv != "" {
			os.Setenv("SCAN_WORKERS", originalEnv)
		} else {
			os.Unsetenv("SCAN_WORKERS")
		}
	}()

	// Clear any existing override
	os.Unsetenv("SCAN_WORKERS")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
		{
			name:       "I/O-bound task (2.0x multiplier)",
			multiplier: 2.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU * 2,
		},
		{
			name:       "With limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "Fractional multiplier rounds down but never below 1",
			multiplier: 0.1,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < tt.minExpect || got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, want between %d and %d",
					tt.multiplier, tt.limit, got, tt.minExpect, tt.maxExpect)
			}
		})
	}
}

func TestCountEnvOverride(t *testing.T) {
	originalEnv := os.Getenv("SCAN_WORKERS")
	defer func() {
		if originalEnv != "" {
			os.Setenv("SCAN_WORKERS", originalEnv)
		} else {
			os.Unsetenv("SCAN_WORKERS")
		}
	}()

	os.Setenv("SCAN_WORKERS", "7")
	if got := Count(1.0, 0); got != 7 {
		t.Errorf("Count with SCAN_WORKERS=7 = %d, want 7", got)
	}

	// Override is still capped by the limit
	if got := Count(1.0, 3); got != 3 {
		t.Errorf("Count with SCAN_WORKERS=7 and limit 3 = %d, want 3", got)
	}

	// Invalid override falls back to calculation
	os.Setenv("SCAN_WORKERS", "not-a-number")
	if got := Count(1.0, 0); got < 1 {
		t.Errorf("Count with invalid override = %d, want >= 1", got)
	}
}

func TestHelpers(t *testing.T) {
	originalEnv := os.Getenv("SCAN_WORKERS")
	defer func() {
		if originalEnv != "" {
			os.Setenv("SCAN_WORKERS", originalEnv)
		} else {
			os.Unsetenv("SCAN_WORKERS")
		}
	}()
	os.Unsetenv("SCAN_WORKERS")

	if got := ForCPU(0); got < 1 {
		t.Errorf("ForCPU(0) = %d, want >= 1", got)
	}
	if got := ForIO(0); got < ForCPU(0) {
		t.Errorf("ForIO(0) = %d, want >= ForCPU(0) = %d", got, ForCPU(0))
	}
	if got := ForMixed(4); got > 4 {
		t.Errorf("ForMixed(4) = %d, want <= 4", got)
	}
}
