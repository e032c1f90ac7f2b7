package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"pdf-catalog/internal/logging"
)

// Default file locations, relative to the working directory unless
// overridden.
const (
	DefaultPreviewDir  = "preview_images"
	DefaultErrorLog    = "pdf_errors.log"
	DefaultCacheFile   = "last_scanned.json"
	DefaultConfigFile  = "config.json"
	DefaultSnapshotExt = ".bin"
)

// ThumbnailConfig holds the first-page render parameters.
type ThumbnailConfig struct {
	// Enabled turns thumbnail generation on or off. Disabled thumbnails
	// leave the Preview Image column empty without logging errors.
	Enabled bool `yaml:"enabled"`
	// Zoom is the render scale applied to the page (1.0 = 72 dpi).
	Zoom float64 `yaml:"zoom"`
	// Quality is the JPEG quality of the encoded preview (1-100).
	Quality int `yaml:"quality"`
}

// Config carries every tunable of the scan pipeline. The zero value is
// not usable; start from Default and override.
type Config struct {
	// Root is the directory tree to scan.
	Root string `yaml:"root"`
	// PreviewDir receives the first-page JPEG previews.
	PreviewDir string `yaml:"preview_dir"`
	// CatalogDir is where the snapshot and backup catalog files live.
	// Empty means alongside the scanned tree (Root).
	CatalogDir string `yaml:"catalog_dir"`
	// ErrorLog is the append-only per-document failure log.
	ErrorLog string `yaml:"error_log"`
	// CacheFile is the JSON fingerprint store.
	CacheFile string `yaml:"cache_file"`

	// Workers sets the extraction worker pool size. 0 or 1 selects the
	// sequential path.
	Workers int `yaml:"workers"`

	// MetadataPages bounds the author/year/ISBN scan.
	MetadataPages int `yaml:"metadata_pages"`
	// OutlinePages bounds the fallback table-of-contents scan.
	OutlinePages int `yaml:"outline_pages"`
	// KeywordPages bounds the keyword-frequency scan.
	KeywordPages int `yaml:"keyword_pages"`
	// TopKeywords is how many terms the keyword summary keeps.
	TopKeywords int `yaml:"top_keywords"`
	// MinKeywordLength is the minimum length of a retained keyword;
	// shorter words are discarded before counting.
	MinKeywordLength int `yaml:"min_keyword_length"`

	// StopWords are generic/boilerplate terms excluded from keyword
	// extraction regardless of frequency.
	StopWords []string `yaml:"stop_words"`

	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
}

// defaultStopWords mirrors the exclusion set the catalog has always
// shipped with: publishing boilerplate plus a few high-frequency English
// words that slip past the length filter.
var defaultStopWords = []string{
	"copyright", "introduction", "author", "summary", "glossary",
	"disclaimer", "page", "note", "contents", "table", "index",
	"preface", "authors", "foreword", "appendix", "the", "this",
	"that", "about", "than", "from", "publisher", "thanks",
	"neither", "through", "extracted",
}

// Default returns the configuration matching the scanner's historical
// behavior: 5 metadata pages, 10 outline pages, 15 keyword pages, top 15
// keywords of length > 5, thumbnails at 1.2 zoom / JPEG quality 60.
func Default() *Config {
	return &Config{
		PreviewDir:       DefaultPreviewDir,
		ErrorLog:         DefaultErrorLog,
		CacheFile:        DefaultCacheFile,
		Workers:          0,
		MetadataPages:    5,
		OutlinePages:     10,
		KeywordPages:     15,
		TopKeywords:      15,
		MinKeywordLength: 6,
		StopWords:        append([]string(nil), defaultStopWords...),
		Thumbnail: ThumbnailConfig{
			Enabled: true,
			Zoom:    1.2,
			Quality: 60,
		},
	}
}

// Load reads a YAML configuration file over the defaults. A missing file
// is an error; pass "" to get Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays supported environment variables onto the config.
// SCAN_ROOT overrides the root directory and SCAN_WORKERS the pool size.
func (c *Config) ApplyEnv() {
	if root := os.Getenv("SCAN_ROOT"); root != "" {
		c.Root = root
	}
	if w := os.Getenv("SCAN_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil && n >= 0 {
			c.Workers = n
		} else {
			logging.Warn("ignoring invalid SCAN_WORKERS=%q", w)
		}
	}
}

// Validate checks the stage parameters for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	if c.MetadataPages < 1 {
		return fmt.Errorf("metadata_pages must be >= 1, got %d", c.MetadataPages)
	}
	if c.OutlinePages < 1 {
		return fmt.Errorf("outline_pages must be >= 1, got %d", c.OutlinePages)
	}
	if c.KeywordPages < 1 {
		return fmt.Errorf("keyword_pages must be >= 1, got %d", c.KeywordPages)
	}
	if c.TopKeywords < 1 {
		return fmt.Errorf("top_keywords must be >= 1, got %d", c.TopKeywords)
	}
	if c.Thumbnail.Quality < 1 || c.Thumbnail.Quality > 100 {
		return fmt.Errorf("thumbnail quality must be 1-100, got %d", c.Thumbnail.Quality)
	}
	if c.Thumbnail.Zoom <= 0 {
		return fmt.Errorf("thumbnail zoom must be positive, got %v", c.Thumbnail.Zoom)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// StopWordSet returns the stop words as a lookup set.
func (c *Config) StopWordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.StopWords))
	for _, w := range c.StopWords {
		set[w] = struct{}{}
	}
	return set
}
