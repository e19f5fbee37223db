package services

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HenleyOrigin is one origin country processed by the pipeline.
type HenleyOrigin struct {
	Name string `yaml:"name"`
	ISO  string `yaml:"iso"`
}

// GlyphThresholds are the empirical constants of the pixel heuristic.
// MinDarkRatio gates on the dark share of the whole box; MinDiagonalScore on
// the share of DARK pixels lying within one pixel of either diagonal. They
// were tuned against the HPI PDFs as rendered by MuPDF; other rendering
// engines anti-alias differently and shift the dark-pixel ratios, so re-tune
// against the calibration fixtures before switching rasterizers.
type GlyphThresholds struct {
	IconBoxSize      int     `yaml:"icon_box_size"`
	IconOffsetX      int     `yaml:"icon_offset_x"`
	Scale            float64 `yaml:"scale"`
	MinDarkRatio     float64 `yaml:"min_dark_ratio"`
	MinDiagonalScore float64 `yaml:"min_diagonal_score"`
	DarkLuminance    float64 `yaml:"dark_luminance"`
}

// HenleyOptions configures a pipeline run.
type HenleyOptions struct {
	DownloadBase string          `yaml:"download_base"`
	Origins      []HenleyOrigin  `yaml:"origins"`
	Timeout      time.Duration   `yaml:"timeout"`
	AllowEmpty   bool            `yaml:"allow_empty"`
	Offline      bool            `yaml:"offline"`
	LocalPDFDir  string          `yaml:"local_pdf_dir"`
	Thresholds   GlyphThresholds `yaml:"thresholds"`
}

// DefaultHenleyOptions returns the production defaults.
func DefaultHenleyOptions() HenleyOptions {
	return HenleyOptions{
		DownloadBase: "https://cdn.henleyglobal.com/storage/app/media/HPI",
		Origins: []HenleyOrigin{
			{Name: "Argentina", ISO: "AR"},
			{Name: "Chile", ISO: "CL"},
			{Name: "Colombia", ISO: "CO"},
			{Name: "España", ISO: "ES"},
			{Name: "México", ISO: "MX"},
		},
		Timeout: 60 * time.Second,
		Thresholds: GlyphThresholds{
			IconBoxSize:      24,
			IconOffsetX:      10,
			Scale:            2,
			MinDarkRatio:     0.03,
			MinDiagonalScore: 0.32,
			DarkLuminance:    180,
		},
	}
}

// LoadHenleyOptions reads a YAML pipeline config and overlays it on the
// defaults; a missing path returns the defaults unchanged.
func LoadHenleyOptions(path string) (HenleyOptions, error) {
	options := DefaultHenleyOptions()
	if path == "" {
		return options, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return options, nil
		}
		return options, fmt.Errorf("failed to read henley config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &options); err != nil {
		return options, fmt.Errorf("failed to parse henley config %s: %w", path, err)
	}
	return options, nil
}

// PDFURL returns the download URL for an origin's full visa PDF.
func (o HenleyOptions) PDFURL(originISO string) string {
	return fmt.Sprintf("%s/%s_visa_full.pdf", o.DownloadBase, originISO)
}
