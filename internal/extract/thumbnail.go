package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/disintegration/imaging"

	"pdf-catalog/internal/logging"
)

// baseDPI is the PDF rendering density at zoom 1.0.
const baseDPI = 72

// Thumbnailer renders first-page preview images into an output
// directory, one JPEG per document named by its zero-padded sequence
// index.
type Thumbnailer struct {
	outDir  string
	zoom    float64
	quality int
	enabled bool
}

// NewThumbnailer creates a Thumbnailer writing into outDir. The directory
// is created up front so a render never fails on a missing parent.
func NewThumbnailer(outDir string, zoom float64, quality int, enabled bool) *Thumbnailer {
	if enabled {
		logging.Debug("thumbnailer: enabled, output dir: %s", outDir)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			logging.Warn("thumbnailer: failed to create output dir: %v", err)
		}
	} else {
		logging.Debug("thumbnailer: disabled")
	}
	return &Thumbnailer{
		outDir:  outDir,
		zoom:    zoom,
		quality: quality,
		enabled: enabled,
	}
}

// IsEnabled reports whether rendering is active.
func (t *Thumbnailer) IsEnabled() bool {
	return t.enabled
}

// Render rasterizes the first page of the document at path and writes it
// as <index padded to 4 digits>.jpg. It returns the output path, or
// ("", error) on any render or encode failure. A disabled Thumbnailer
// returns ("", nil).
func (t *Thumbnailer) Render(path string, index int) (string, error) {
	if !t.enabled {
		return "", nil
	}
	if !IsVipsAvailable() {
		return "", fmt.Errorf("libvips not initialized")
	}

	params := vips.NewImportParams()
	params.Page.Set(0)
	params.NumPages.Set(1)
	params.Density.Set(int(baseDPI * t.zoom))

	ref, err := vips.LoadImageFromFile(path, params)
	if err != nil {
		return "", fmt.Errorf("rendering first page: %w", err)
	}
	defer ref.Close()

	// No alpha channel in the preview: flatten onto white.
	if ref.HasAlpha() {
		if err := ref.Flatten(&vips.Color{R: 255, G: 255, B: 255}); err != nil {
			return "", fmt.Errorf("flattening page: %w", err)
		}
	}

	// Export lossless, then re-encode at the configured JPEG quality.
	pngBytes, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return "", fmt.Errorf("exporting page: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return "", fmt.Errorf("decoding rendered page: %w", err)
	}

	outPath := filepath.Join(t.outDir, fmt.Sprintf("%04d.jpg", index))
	if err := imaging.Save(img, outPath, imaging.JPEGQuality(t.quality)); err != nil {
		return "", fmt.Errorf("encoding preview: %w", err)
	}

	logging.Debug("preview written: %s", outPath)
	return outPath, nil
}
