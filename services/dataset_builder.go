package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"necesitovisa/models"
)

const (
	// IndexFileName is the global country index artifact.
	IndexFileName = "index.json"
	// CountriesMetaFileName is the flat per-country metadata artifact.
	CountriesMetaFileName = "countries.meta.json"
)

// CountryMetaEntry is one row of countries.meta.json.
type CountryMetaEntry struct {
	NameEN string `json:"name_en"`
	NameES string `json:"name_es"`
	SlugES string `json:"slug_es"`
	SlugEN string `json:"slug_en"`
}

// DatasetBuilder turns the raw passport-index matrix into one JSON document
// per origin country plus the global index. A build is all-or-nothing: any
// error aborts without partial output, since a partial dataset would make
// the site serve silently wrong country lists.
type DatasetBuilder struct {
	OutDir     string
	MinColumns int // 0 means DefaultMinMatrixColumns
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	RunID       string
	GeneratedAt time.Time
	Origins     int
}

// BuildFromFile reads the source CSV and runs Build. A missing or unreadable
// source file is fatal.
func (b *DatasetBuilder) BuildFromFile(csvPath string) (*BuildResult, error) {
	text, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source CSV %s: %w", csvPath, err)
	}
	return b.Build(string(text))
}

// Build parses the matrix and writes all artifacts. Raw cell values are
// preserved verbatim in the per-origin files; classification is deferred to
// read time so the rules can change without a rebuild.
func (b *DatasetBuilder) Build(csvText string) (*BuildResult, error) {
	matrix, err := ParsePassportMatrix(csvText, b.MinColumns)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BuildResult{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	var metaEntries []CountryMetaEntry
	index := models.CountryIndex{
		MapSlugToKey: make(map[string]string),
		MapAltToSlug: make(map[string]string),
	}
	originSlugs := NewSlugTracker()

	for _, row := range matrix.Rows {
		originKey := row.Origin
		if originKey == "" {
			continue
		}

		originNameES := GetCountryNameES(originKey)
		originSlugEN := SlugifyEN(originKey)
		originSlugBase := SlugifyES(originNameES)
		if originSlugBase == "" {
			originSlugBase = originSlugEN
		}
		originSlugES := originSlugs.Ensure(originSlugBase)

		index.MapSlugToKey[originSlugES] = originKey

		var originAltSlugs []string
		if originSlugEN != "" && originSlugEN != originSlugES {
			originAltSlugs = append(originAltSlugs, originSlugEN)
			index.MapAltToSlug[originSlugEN] = originSlugES
		}

		data := b.buildOriginData(originKey, originNameES, originSlugES, matrix.Header, row.Values)
		if err := WriteJSONAtomic(filepath.Join(b.OutDir, originKey+".json"), data); err != nil {
			return nil, fmt.Errorf("failed to write dataset for %s: %w", originKey, err)
		}

		metaEntries = append(metaEntries, CountryMetaEntry{
			NameEN: originKey,
			NameES: originNameES,
			SlugES: originSlugES,
			SlugEN: originSlugEN,
		})
		index.List = append(index.List, models.CountryIndexEntry{
			Key:      originKey,
			NameEN:   originKey,
			NameES:   originNameES,
			SlugES:   originSlugES,
			SlugEN:   originSlugEN,
			AltSlugs: originAltSlugs,
		})

		result.Origins++
	}

	// The per-origin files land in source-row order, but the index must be
	// stable alphabetical by Spanish name.
	collator := collate.New(language.Spanish)
	sort.SliceStable(index.List, func(i, j int) bool {
		return collator.CompareString(
			sortName(index.List[i].NameES, index.List[i].NameEN),
			sortName(index.List[j].NameES, index.List[j].NameEN),
		) < 0
	})
	sort.SliceStable(metaEntries, func(i, j int) bool {
		return collator.CompareString(
			sortName(metaEntries[i].NameES, metaEntries[i].NameEN),
			sortName(metaEntries[j].NameES, metaEntries[j].NameEN),
		) < 0
	})

	if err := WriteJSONAtomic(filepath.Join(b.OutDir, CountriesMetaFileName), metaEntries); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", CountriesMetaFileName, err)
	}
	if err := WriteJSONAtomic(filepath.Join(b.OutDir, IndexFileName), index); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", IndexFileName, err)
	}

	return result, nil
}

func (b *DatasetBuilder) buildOriginData(originKey, originNameES, originSlugES string, header []string, values []string) *models.OriginVisaData {
	data := &models.OriginVisaData{
		OriginKey:     originKey,
		OriginNameES:  originNameES,
		OriginSlugES:  originSlugES,
		SlugToKey:     make(map[string]string),
		AltSlugToSlug: make(map[string]string),
		Raw: &models.RawOriginData{
			Origin:       originKey,
			Destinations: make(map[string]string),
		},
	}

	destSlugs := NewSlugTracker()
	for j, destinationKey := range header {
		if destinationKey == "" || j >= len(values) {
			continue
		}
		value := values[j]
		data.Raw.Destinations[destinationKey] = value

		destNameES := GetCountryNameES(destinationKey)
		destSlugEN := SlugifyEN(destinationKey)
		destSlugBase := SlugifyES(destNameES)
		if destSlugBase == "" {
			destSlugBase = destSlugEN
		}
		destSlugES := destSlugs.Ensure(destSlugBase)

		if destSlugEN != "" && destSlugEN != destSlugES {
			data.AltSlugToSlug[destSlugEN] = destSlugES
		}
		data.SlugToKey[destSlugES] = destinationKey

		data.Destinations = append(data.Destinations, models.DestinationEntry{
			Key:         destinationKey,
			NameES:      destNameES,
			SlugES:      destSlugES,
			Requirement: value,
		})
	}

	return data
}

func sortName(nameES, nameEN string) string {
	if nameES != "" {
		return nameES
	}
	return nameEN
}

// WriteJSONAtomic marshals v with two-space indentation and writes it via a
// temp file plus rename in the target directory, so a concurrent reader in
// another process never observes a partially-written artifact.
func WriteJSONAtomic(path string, v interface{}) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
