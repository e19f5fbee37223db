package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"necesitovisa/models"
)

// minTextEntries is the entry count below which the text-layout strategy is
// considered to have failed and the pixel strategy takes over. A full HPI
// PDF lists close to two hundred destinations.
const minTextEntries = 50

// HenleyPipeline produces the Henley overlay artifact: one PDF per origin,
// extracted into a matrix keyed by ISO-2, written atomically with a sibling
// meta file describing the run.
type HenleyPipeline struct {
	Options HenleyOptions
	Fetcher HenleyFetcher

	// Strategies are tried in order until one yields enough entries.
	Strategies []HenleyStrategy

	// OutPath is the overlay file; the meta file is written next to it.
	OutPath string
}

// NewHenleyPipeline wires the production pipeline: HTTP or local fetcher
// depending on the offline flag, text-layout strategy first with the
// pixel-glyph strategy as fallback.
func NewHenleyPipeline(options HenleyOptions, outPath string) *HenleyPipeline {
	var fetcher HenleyFetcher
	if options.Offline {
		fetcher = &LocalHenleyFetcher{Dir: options.LocalPDFDir}
	} else {
		fetcher = &HTTPHenleyFetcher{Options: options}
	}

	return &HenleyPipeline{
		Options: options,
		Fetcher: fetcher,
		Strategies: []HenleyStrategy{
			&TextLayoutExtractor{},
			NewPixelGlyphExtractor(options.Thresholds),
		},
		OutPath: outPath,
	}
}

// Run processes every configured origin and writes the overlay. Per-origin
// failures fall back to the previous dataset's rows for that origin; the run
// only fails when the resulting matrix would be completely empty and
// AllowEmpty is false.
func (p *HenleyPipeline) Run(ctx context.Context) (*models.HenleyDataset, error) {
	previous := p.loadPrevious()

	dataset := &models.HenleyDataset{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      "henley-passport-index",
		Matrix:      models.HenleyMatrix{},
	}
	meta := models.HenleyMeta{
		GeneratedAt: dataset.GeneratedAt,
		RunID:       uuid.NewString(),
	}

	for _, origin := range p.Options.Origins {
		status := p.processOrigin(ctx, origin, dataset, previous)
		meta.Sources = append(meta.Sources, status)
		if !p.Options.Offline {
			dataset.Sources = append(dataset.Sources, p.Options.PDFURL(origin.ISO))
		}
	}

	if matrixEntryCount(dataset.Matrix) == 0 && !p.Options.AllowEmpty {
		if previous != nil && matrixEntryCount(previous.Matrix) > 0 {
			return nil, fmt.Errorf("henley run produced no entries; keeping previous dataset at %s", p.OutPath)
		}
		return nil, fmt.Errorf("henley run produced no entries and no previous dataset exists")
	}

	if err := os.MkdirAll(filepath.Dir(p.OutPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := WriteJSONAtomic(p.OutPath, dataset); err != nil {
		return nil, fmt.Errorf("failed to write henley dataset: %w", err)
	}
	if err := WriteJSONAtomic(henleyMetaPath(p.OutPath), meta); err != nil {
		return nil, fmt.Errorf("failed to write henley meta: %w", err)
	}
	return dataset, nil
}

// processOrigin fetches and extracts one origin, filling the dataset matrix.
// On failure it copies the origin's rows from the previous dataset when
// available and marks the origin as a fallback.
func (p *HenleyPipeline) processOrigin(ctx context.Context, origin HenleyOrigin, dataset *models.HenleyDataset, previous *models.HenleyDataset) models.HenleyOriginStatus {
	status := models.HenleyOriginStatus{OriginISO: origin.ISO}
	if !p.Options.Offline {
		status.PDFURL = p.Options.PDFURL(origin.ISO)
	}

	data, err := p.Fetcher.Fetch(ctx, origin.ISO)
	if err != nil {
		log.Printf("[WARNING] henley: %s: %v", origin.ISO, err)
		return p.fallbackOrigin(origin, dataset, previous, status, "download_error", err)
	}

	entries, pdfDate, err := p.extract(data, origin)
	if err != nil {
		log.Printf("[WARNING] henley: %s: %v", origin.ISO, err)
		return p.fallbackOrigin(origin, dataset, previous, status, "parse_error", err)
	}

	row := map[string]models.HenleyVisaEntry{}
	for _, entry := range entries {
		destISO := ResolveDestinationISO(entry.Destination)
		if destISO == "" || destISO == origin.ISO {
			continue
		}
		row[destISO] = models.HenleyVisaEntry{
			RequiresVisa: entry.RequiresVisa,
			Source:       "henley-pdf",
			PDFUpdatedAt: pdfDate,
		}
	}

	if len(row) == 0 {
		err := fmt.Errorf("no destinations resolved out of %d extracted entries", len(entries))
		log.Printf("[WARNING] henley: %s: %v", origin.ISO, err)
		return p.fallbackOrigin(origin, dataset, previous, status, "parse_error", err)
	}

	dataset.Matrix[origin.ISO] = row
	status.Entries = len(row)
	status.PDFUpdatedAt = pdfDate
	if pdfDate == "" {
		status.Status = "unknown_date"
	} else {
		status.Status = "ok"
	}
	return status
}

// extract runs the strategies in order, keeping the best result. A strategy
// that errors or yields too few entries hands over to the next one.
func (p *HenleyPipeline) extract(data []byte, origin HenleyOrigin) ([]HenleyPDFEntry, string, error) {
	var bestEntries []HenleyPDFEntry
	var bestDate string
	var errs []string

	for _, strategy := range p.Strategies {
		entries, pdfDate, err := strategy.Extract(data, origin)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if len(entries) >= minTextEntries {
			return entries, pdfDate, nil
		}
		if len(entries) > len(bestEntries) {
			bestEntries = entries
			bestDate = pdfDate
		}
	}

	if len(bestEntries) > 0 {
		return bestEntries, bestDate, nil
	}
	if len(errs) > 0 {
		return nil, "", fmt.Errorf("all extraction strategies failed: %s", strings.Join(errs, "; "))
	}
	return nil, "", fmt.Errorf("no entries extracted")
}

// fallbackOrigin carries the previous run's rows forward for a failed
// origin so one bad PDF never blanks an origin that used to have data.
func (p *HenleyPipeline) fallbackOrigin(origin HenleyOrigin, dataset *models.HenleyDataset, previous *models.HenleyDataset, status models.HenleyOriginStatus, kind string, cause error) models.HenleyOriginStatus {
	status.ParseError = cause.Error()
	status.Status = kind

	if previous != nil {
		if row, ok := previous.Matrix[origin.ISO]; ok && len(row) > 0 {
			copied := make(map[string]models.HenleyVisaEntry, len(row))
			for k, v := range row {
				copied[k] = v
			}
			dataset.Matrix[origin.ISO] = copied
			status.Status = "fallback"
			status.Entries = len(copied)
			log.Printf("[WARNING] henley: %s: reusing %d entries from previous dataset", origin.ISO, len(copied))
		}
	}
	return status
}

// loadPrevious reads the overlay from a prior run, if any. Corrupt or
// missing files just mean no fallback data.
func (p *HenleyPipeline) loadPrevious() *models.HenleyDataset {
	content, err := os.ReadFile(p.OutPath)
	if err != nil {
		return nil
	}
	var dataset models.HenleyDataset
	if err := json.Unmarshal(content, &dataset); err != nil {
		log.Printf("[WARNING] henley: previous dataset at %s is corrupt: %v", p.OutPath, err)
		return nil
	}
	return &dataset
}

func matrixEntryCount(matrix models.HenleyMatrix) int {
	total := 0
	for _, row := range matrix {
		total += len(row)
	}
	return total
}

// henleyMetaPath derives the sibling meta filename: visa-matrix.json ->
// visa-matrix.meta.json.
func henleyMetaPath(outPath string) string {
	if strings.HasSuffix(outPath, ".json") {
		return strings.TrimSuffix(outPath, ".json") + ".meta.json"
	}
	return outPath + ".meta.json"
}
