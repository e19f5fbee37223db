package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHenleyOptions(t *testing.T) {
	options := DefaultHenleyOptions()

	assert.Len(t, options.Origins, 5)
	assert.Equal(t, "AR", options.Origins[0].ISO)
	assert.Equal(t, 60*time.Second, options.Timeout)
	assert.Equal(t, 24, options.Thresholds.IconBoxSize)
	assert.InDelta(t, 0.32, options.Thresholds.MinDiagonalScore, 0.0001)
}

func TestLoadHenleyOptionsMissingFileKeepsDefaults(t *testing.T) {
	options, err := LoadHenleyOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultHenleyOptions().DownloadBase, options.DownloadBase)
}

func TestLoadHenleyOptionsOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "henley.yaml")
	content := `
download_base: https://mirror.example/hpi
origins:
  - name: Chile
    iso: CL
thresholds:
  min_dark_ratio: 0.05
  icon_box_size: 32
  icon_offset_x: 10
  scale: 2
  min_diagonal_score: 0.32
  dark_luminance: 180
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	options, err := LoadHenleyOptions(path)
	assert.NoError(t, err)
	assert.Equal(t, "https://mirror.example/hpi", options.DownloadBase)
	assert.Len(t, options.Origins, 1)
	assert.Equal(t, "CL", options.Origins[0].ISO)
	assert.InDelta(t, 0.05, options.Thresholds.MinDarkRatio, 0.0001)
	assert.Equal(t, 32, options.Thresholds.IconBoxSize)
}

func TestLoadHenleyOptionsRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "henley.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("origins: {not a list"), 0o644))

	_, err := LoadHenleyOptions(path)
	assert.Error(t, err)
}

func TestPDFURL(t *testing.T) {
	options := DefaultHenleyOptions()
	assert.Equal(t,
		"https://cdn.henleyglobal.com/storage/app/media/HPI/CL_visa_full.pdf",
		options.PDFURL("CL"))
}
