package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"necesitovisa/models"
)

func writeStoreFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	index := models.CountryIndex{
		List: []models.CountryIndexEntry{
			{
				Key:      "Chile",
				NameEN:   "Chile",
				NameES:   "Chile",
				SlugES:   "chile",
				SlugEN:   "chile",
				AltSlugs: []string{"republica-de-chile"},
			},
			{
				Key:    "Spain",
				NameEN: "Spain",
				NameES: "España",
				SlugES: "espana",
				SlugEN: "spain",
			},
		},
		MapSlugToKey: map[string]string{"chile": "Chile", "espana": "Spain"},
		MapAltToSlug: map[string]string{"republica-de-chile": "chile", "spain": "espana"},
	}
	require.NoError(t, WriteJSONAtomic(filepath.Join(dir, IndexFileName), index))

	chile := models.OriginVisaData{
		OriginKey:    "Chile",
		OriginNameES: "Chile",
		OriginSlugES: "chile",
		Destinations: []models.DestinationEntry{
			{Key: "United States", NameES: "Estados Unidos", SlugES: "estados-unidos", Requirement: "90"},
			{Key: "India", NameES: "India", SlugES: "india", Requirement: "e-visa"},
		},
		SlugToKey:     map[string]string{"estados-unidos": "United States", "india": "India"},
		AltSlugToSlug: map[string]string{"united-states": "estados-unidos", "usa": "estados-unidos"},
	}
	require.NoError(t, WriteJSONAtomic(filepath.Join(dir, "Chile.json"), chile))

	return dir
}

func TestResolveOriginCanonicalSlug(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")

	res, ok := store.ResolveOrigin("chile")
	require.True(t, ok)
	assert.Equal(t, "Chile", res.Entry.Key)
	assert.Equal(t, "chile", res.CanonicalSlug)
	assert.False(t, res.Redirected)
}

func TestResolveOriginAltSlugRedirects(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")

	for _, alt := range []string{"republica-de-chile"} {
		res, ok := store.ResolveOrigin(alt)
		require.True(t, ok, alt)
		assert.Equal(t, "chile", res.CanonicalSlug)
		assert.True(t, res.Redirected)
	}

	// The English slug of another country redirects too.
	res, ok := store.ResolveOrigin("spain")
	require.True(t, ok)
	assert.Equal(t, "espana", res.CanonicalSlug)
	assert.True(t, res.Redirected)
	assert.Equal(t, "España", res.Entry.NameES)
}

func TestResolveOriginUnknownSlug(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")

	res, ok := store.ResolveOrigin("atlantis")
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestListAllIndexOrder(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")

	list := store.ListAll()
	require.Len(t, list, 2)
	assert.Equal(t, "Chile", list[0].Key)
	assert.Equal(t, "Spain", list[1].Key)
}

func TestStoreDegradesWithoutIndex(t *testing.T) {
	store := NewDatasetStore(t.TempDir(), "")

	assert.Empty(t, store.ListAll())
	_, ok := store.ResolveOrigin("chile")
	assert.False(t, ok)
	assert.Equal(t, "", store.GeneratedAt())
}

func TestStoreDegradesWithCorruptIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFileName), []byte("{not json"), 0o644))

	store := NewDatasetStore(dir, "")
	assert.Empty(t, store.ListAll())
	_, ok := store.ResolveOrigin("chile")
	assert.False(t, ok)
}

func TestOriginData(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")

	data := store.OriginData("Chile")
	require.NotNil(t, data)
	assert.Equal(t, "chile", data.OriginSlugES)
	assert.Len(t, data.Destinations, 2)

	// Second read hits the cache and returns the same instance.
	assert.Same(t, data, store.OriginData("Chile"))

	assert.Nil(t, store.OriginData("Spain"))
	assert.Nil(t, store.OriginData("Atlantis"))
}

func TestResolveDestination(t *testing.T) {
	store := NewDatasetStore(writeStoreFixture(t), "")
	data := store.OriginData("Chile")
	require.NotNil(t, data)

	res, ok := store.ResolveDestination(data, "estados-unidos")
	require.True(t, ok)
	assert.Equal(t, "United States", res.Destination.Key)
	assert.Equal(t, "90", res.Destination.Requirement)
	assert.False(t, res.Redirected)

	res, ok = store.ResolveDestination(data, "usa")
	require.True(t, ok)
	assert.Equal(t, "estados-unidos", res.CanonicalSlug)
	assert.True(t, res.Redirected)

	_, ok = store.ResolveDestination(data, "narnia")
	assert.False(t, ok)

	_, ok = store.ResolveDestination(nil, "estados-unidos")
	assert.False(t, ok)
}

func TestGeneratedAt(t *testing.T) {
	dir := writeStoreFixture(t)
	store := NewDatasetStore(dir, "")

	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), store.GeneratedAt())
}

func TestHenleyOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "visa-matrix.json")
	dataset := models.HenleyDataset{
		GeneratedAt: "2025-06-01T00:00:00Z",
		Source:      "henley-passport-index",
		Matrix: models.HenleyMatrix{
			"CL": {"US": {RequiresVisa: false, PDFUpdatedAt: "2025-01-11"}},
		},
	}
	require.NoError(t, WriteJSONAtomic(path, dataset))

	store := NewDatasetStore(dir, path)
	henley := store.Henley()
	require.NotNil(t, henley)
	assert.Equal(t, "henley-passport-index", henley.Source)
	assert.False(t, henley.Matrix["CL"]["US"].RequiresVisa)

	// Cached after the first read.
	assert.Same(t, henley, store.Henley())
}

func TestHenleyOverlayAbsent(t *testing.T) {
	assert.Nil(t, NewDatasetStore(t.TempDir(), "").Henley())

	store := NewDatasetStore(t.TempDir(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, store.Henley())
}
