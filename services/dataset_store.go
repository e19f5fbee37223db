package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"necesitovisa/models"
)

// DatasetStore is a read-through cache over the generated JSON artifacts.
// It is constructed once at process startup and passed to consumers; the
// underlying files are immutable per build, so there is no invalidation.
// A missing artifact is not an error at read time: lookups return the empty
// result and the serving layer renders not-found.
type DatasetStore struct {
	dir        string
	henleyPath string

	mu      sync.RWMutex
	index   *models.CountryIndex
	byKey   map[string]models.CountryIndexEntry
	origins map[string]*models.OriginVisaData
	henley  *models.HenleyDataset
	loaded  struct {
		index  bool
		henley bool
	}
}

// NewDatasetStore creates a store over a generated-data directory. The
// Henley overlay (optional) lives at henleyPath; pass "" when unused.
func NewDatasetStore(dir, henleyPath string) *DatasetStore {
	return &DatasetStore{
		dir:        dir,
		henleyPath: henleyPath,
		origins:    make(map[string]*models.OriginVisaData),
	}
}

// OriginResolution is the result of resolving an origin slug.
type OriginResolution struct {
	Entry         models.CountryIndexEntry
	CanonicalSlug string
	Redirected    bool
}

func (s *DatasetStore) loadIndex() *models.CountryIndex {
	s.mu.RLock()
	if s.loaded.index {
		defer s.mu.RUnlock()
		return s.index
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded.index {
		return s.index
	}

	index := &models.CountryIndex{
		MapSlugToKey: map[string]string{},
		MapAltToSlug: map[string]string{},
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, IndexFileName))
	if err == nil {
		if err := json.Unmarshal(raw, index); err != nil {
			// A corrupt index is treated the same as a missing one; the
			// site degrades to empty lists instead of crashing.
			index = &models.CountryIndex{
				MapSlugToKey: map[string]string{},
				MapAltToSlug: map[string]string{},
			}
		}
	}

	s.byKey = make(map[string]models.CountryIndexEntry, len(index.List))
	for _, entry := range index.List {
		s.byKey[entry.Key] = entry
	}
	s.index = index
	s.loaded.index = true
	return s.index
}

// ListAll returns every origin country in index order (alphabetical by
// Spanish name, as written by the builder).
func (s *DatasetStore) ListAll() []models.CountryIndexEntry {
	return s.loadIndex().List
}

// GetByKey returns the index entry for a raw source key.
func (s *DatasetStore) GetByKey(key string) (models.CountryIndexEntry, bool) {
	s.loadIndex()
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.byKey[key]
	return entry, ok
}

// ResolveOrigin resolves a path slug to an index entry. Canonical slugs
// resolve directly; legacy alt slugs resolve with Redirected set so the
// handler can issue a 301 to the canonical URL.
func (s *DatasetStore) ResolveOrigin(slug string) (*OriginResolution, bool) {
	index := s.loadIndex()

	if key, ok := index.MapSlugToKey[slug]; ok {
		entry, found := s.GetByKey(key)
		if !found {
			return nil, false
		}
		return &OriginResolution{Entry: entry, CanonicalSlug: slug}, true
	}

	canonical, ok := index.MapAltToSlug[slug]
	if !ok {
		return nil, false
	}
	key, ok := index.MapSlugToKey[canonical]
	if !ok {
		return nil, false
	}
	entry, found := s.GetByKey(key)
	if !found {
		return nil, false
	}
	return &OriginResolution{Entry: entry, CanonicalSlug: canonical, Redirected: true}, true
}

// OriginData returns the per-origin dataset for a raw source key, or nil
// when no dataset exists for it.
func (s *DatasetStore) OriginData(originKey string) *models.OriginVisaData {
	s.mu.RLock()
	if data, ok := s.origins[originKey]; ok {
		s.mu.RUnlock()
		return data
	}
	s.mu.RUnlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, originKey+".json"))
	if err != nil {
		return nil
	}
	data := &models.OriginVisaData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil
	}

	s.mu.Lock()
	s.origins[originKey] = data
	s.mu.Unlock()
	return data
}

// DestinationResolution is the result of resolving a destination slug
// within an origin dataset.
type DestinationResolution struct {
	CanonicalSlug string
	Destination   models.DestinationEntry
	Redirected    bool
}

// ResolveDestination resolves a destination slug (canonical or legacy)
// inside an origin dataset.
func (s *DatasetStore) ResolveDestination(data *models.OriginVisaData, slug string) (*DestinationResolution, bool) {
	if data == nil {
		return nil, false
	}

	canonical := slug
	redirected := false
	if mapped, ok := data.AltSlugToSlug[slug]; ok {
		canonical = mapped
		redirected = true
	}

	key, ok := data.SlugToKey[canonical]
	if !ok {
		return nil, false
	}
	for _, dest := range data.Destinations {
		if dest.Key == key {
			return &DestinationResolution{
				CanonicalSlug: canonical,
				Destination:   dest,
				Redirected:    redirected,
			}, true
		}
	}
	return nil, false
}

// GeneratedAt reports when the dataset was last built, from the index file
// modification time. Empty when no dataset exists.
func (s *DatasetStore) GeneratedAt() string {
	info, err := os.Stat(filepath.Join(s.dir, IndexFileName))
	if err != nil {
		return ""
	}
	return info.ModTime().UTC().Format("2006-01-02")
}

// Henley returns the Henley overlay dataset, or nil when it has not been
// generated. The result is cached after the first read.
func (s *DatasetStore) Henley() *models.HenleyDataset {
	if s.henleyPath == "" {
		return nil
	}

	s.mu.RLock()
	if s.loaded.henley {
		defer s.mu.RUnlock()
		return s.henley
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded.henley {
		return s.henley
	}
	s.loaded.henley = true

	raw, err := os.ReadFile(s.henleyPath)
	if err != nil {
		return nil
	}
	dataset := &models.HenleyDataset{}
	if err := json.Unmarshal(raw, dataset); err != nil {
		return nil
	}
	s.henley = dataset
	return s.henley
}
