package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necesitovisa/models"
)

type stubFetcher struct {
	pdfs map[string][]byte
}

func (f *stubFetcher) Fetch(_ context.Context, originISO string) ([]byte, error) {
	data, ok := f.pdfs[originISO]
	if !ok {
		return nil, fmt.Errorf("no PDF for %s", originISO)
	}
	return data, nil
}

// stubStrategy returns canned entries per origin, keyed by the PDF bytes'
// first byte so tests can route different payloads to different outcomes.
type stubStrategy struct {
	entries map[string][]HenleyPDFEntry
	date    string
	err     error
}

func (s *stubStrategy) Extract(_ []byte, origin HenleyOrigin) ([]HenleyPDFEntry, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.entries[origin.ISO], s.date, nil
}

func pipelineOrigins() []HenleyOrigin {
	return []HenleyOrigin{
		{Name: "Chile", ISO: "CL"},
		{Name: "Argentina", ISO: "AR"},
	}
}

func testPipeline(t *testing.T, strategies []HenleyStrategy, allowEmpty bool) *HenleyPipeline {
	t.Helper()
	options := DefaultHenleyOptions()
	options.Origins = pipelineOrigins()
	options.Offline = true
	options.AllowEmpty = allowEmpty

	return &HenleyPipeline{
		Options: options,
		Fetcher: &stubFetcher{pdfs: map[string][]byte{
			"CL": []byte("pdf-cl"),
			"AR": []byte("pdf-ar"),
		}},
		Strategies: strategies,
		OutPath:    filepath.Join(t.TempDir(), "henley", "visa-matrix.json"),
	}
}

func TestHenleyPipelineRun(t *testing.T) {
	strategy := &stubStrategy{
		entries: map[string][]HenleyPDFEntry{
			"CL": {
				{Destination: "Argentina", RequirementText: "visa-free", RequiresVisa: false},
				{Destination: "India", RequirementText: "e-visa required", RequiresVisa: true},
				{Destination: "Chile", RequirementText: "visa-free", RequiresVisa: false},
				{Destination: "Atlantis", RequirementText: "visa-free", RequiresVisa: false},
			},
			"AR": {
				{Destination: "United States of America", RequirementText: "visa required", RequiresVisa: true},
			},
		},
		date: "2025-01-11",
	}

	pipeline := testPipeline(t, []HenleyStrategy{strategy}, false)
	dataset, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "henley-passport-index", dataset.Source)
	assert.NotEmpty(t, dataset.GeneratedAt)

	// Self rows and unresolvable names are dropped.
	row := dataset.Matrix["CL"]
	require.Len(t, row, 2)
	assert.False(t, row["AR"].RequiresVisa)
	assert.True(t, row["IN"].RequiresVisa)
	assert.Equal(t, "2025-01-11", row["IN"].PDFUpdatedAt)
	assert.Equal(t, "henley-pdf", row["IN"].Source)

	assert.True(t, dataset.Matrix["AR"]["US"].RequiresVisa)

	// Overlay and meta files land on disk.
	written := readHenleyDataset(t, pipeline.OutPath)
	assert.Equal(t, dataset.Matrix, written.Matrix)

	meta := readHenleyMeta(t, henleyMetaPath(pipeline.OutPath))
	assert.NotEmpty(t, meta.RunID)
	require.Len(t, meta.Sources, 2)
	assert.Equal(t, "ok", meta.Sources[0].Status)
	assert.Equal(t, 2, meta.Sources[0].Entries)
}

func TestHenleyPipelineUnknownDateStatus(t *testing.T) {
	strategy := &stubStrategy{
		entries: map[string][]HenleyPDFEntry{
			"CL": {{Destination: "Argentina", RequiresVisa: false}},
			"AR": {{Destination: "Chile", RequiresVisa: false}},
		},
	}

	pipeline := testPipeline(t, []HenleyStrategy{strategy}, false)
	_, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	meta := readHenleyMeta(t, henleyMetaPath(pipeline.OutPath))
	for _, source := range meta.Sources {
		assert.Equal(t, "unknown_date", source.Status)
	}
}

func TestHenleyPipelineFallsBackToPreviousRun(t *testing.T) {
	pipeline := testPipeline(t, []HenleyStrategy{&stubStrategy{err: fmt.Errorf("garbled PDF")}}, false)

	previous := models.HenleyDataset{
		GeneratedAt: "2025-05-01T00:00:00Z",
		Source:      "henley-passport-index",
		Matrix: models.HenleyMatrix{
			"CL": {"US": {RequiresVisa: false, PDFUpdatedAt: "2025-04-20"}},
		},
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(pipeline.OutPath), 0o755))
	require.NoError(t, WriteJSONAtomic(pipeline.OutPath, previous))

	dataset, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	// Chile keeps its old row; Argentina had no previous data.
	assert.Equal(t, previous.Matrix["CL"], dataset.Matrix["CL"])
	_, hasAR := dataset.Matrix["AR"]
	assert.False(t, hasAR)

	meta := readHenleyMeta(t, henleyMetaPath(pipeline.OutPath))
	require.Len(t, meta.Sources, 2)
	assert.Equal(t, "fallback", meta.Sources[0].Status)
	assert.Equal(t, 1, meta.Sources[0].Entries)
	assert.Equal(t, "parse_error", meta.Sources[1].Status)
	assert.Contains(t, meta.Sources[1].ParseError, "garbled PDF")
}

func TestHenleyPipelineRefusesEmptyMatrix(t *testing.T) {
	pipeline := testPipeline(t, []HenleyStrategy{&stubStrategy{err: fmt.Errorf("garbled PDF")}}, false)

	_, err := pipeline.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")

	_, statErr := os.Stat(pipeline.OutPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHenleyPipelineAllowEmpty(t *testing.T) {
	pipeline := testPipeline(t, []HenleyStrategy{&stubStrategy{err: fmt.Errorf("garbled PDF")}}, true)

	dataset, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dataset.Matrix)

	written := readHenleyDataset(t, pipeline.OutPath)
	assert.Empty(t, written.Matrix)
}

func TestHenleyPipelineStrategyFallback(t *testing.T) {
	short := &stubStrategy{
		entries: map[string][]HenleyPDFEntry{
			"CL": {{Destination: "Argentina", RequiresVisa: false}},
		},
	}
	full := &stubStrategy{
		entries: map[string][]HenleyPDFEntry{
			"CL": manyEntries(),
			"AR": manyEntries(),
		},
		date: "2025-01-11",
	}

	pipeline := testPipeline(t, []HenleyStrategy{short, full}, false)
	dataset, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	// The first strategy's single entry is below the confidence floor, so
	// the second strategy's full result wins.
	assert.Greater(t, len(dataset.Matrix["CL"]), 1)
}

func TestHenleyMetaPath(t *testing.T) {
	assert.Equal(t, "data/henley/visa-matrix.meta.json", henleyMetaPath("data/henley/visa-matrix.json"))
	assert.Equal(t, "overlay.meta.json", henleyMetaPath("overlay"))
}

// manyEntries returns enough distinct resolvable destinations to clear the
// strategy confidence floor.
func manyEntries() []HenleyPDFEntry {
	names := []string{
		"Argentina", "Brazil", "Canada", "Denmark", "Estonia", "Finland",
		"France", "Germany", "Greece", "Hungary", "Iceland", "India",
		"Indonesia", "Ireland", "Italy", "Japan", "Kenya", "Latvia",
		"Lithuania", "Luxembourg", "Malaysia", "Malta", "Mexico", "Morocco",
		"Netherlands", "New Zealand", "Nigeria", "Norway", "Peru", "Poland",
		"Portugal", "Qatar", "Romania", "Serbia", "Singapore", "Slovakia",
		"Slovenia", "South Africa", "Spain", "Sweden", "Switzerland",
		"Thailand", "Tunisia", "Turkey", "Ukraine", "United Kingdom",
		"Uruguay", "Vietnam", "Zambia", "Zimbabwe", "Egypt", "Ecuador",
	}
	entries := make([]HenleyPDFEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, HenleyPDFEntry{Destination: name, RequirementText: "visa-free"})
	}
	return entries
}

func readHenleyDataset(t *testing.T, path string) models.HenleyDataset {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var dataset models.HenleyDataset
	require.NoError(t, json.Unmarshal(raw, &dataset))
	return dataset
}

func readHenleyMeta(t *testing.T, path string) models.HenleyMeta {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var meta models.HenleyMeta
	require.NoError(t, json.Unmarshal(raw, &meta))
	return meta
}
