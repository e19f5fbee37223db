package handlers

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"necesitovisa/config"
	"necesitovisa/models"
	"necesitovisa/services"
	"necesitovisa/templates"
)

// writeTestDataset builds a tiny generated dataset on disk: one origin
// (Chile) with two destinations, plus a legacy alt slug for each level so
// redirect behavior can be exercised.
func writeTestDataset(t *testing.T, dir string) {
	t.Helper()

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
		},
		MapSlugToKey: map[string]string{"chile": "Chile"},
		MapAltToSlug: map[string]string{"republica-de-chile": "chile"},
	}
	assert.NoError(t, services.WriteJSONAtomic(filepath.Join(dir, services.IndexFileName), index))

	origin := models.OriginVisaData{
		OriginKey:    "Chile",
		OriginNameES: "Chile",
		OriginSlugES: "chile",
		Destinations: []models.DestinationEntry{
			{Key: "United States", NameES: "Estados Unidos", SlugES: "estados-unidos", Requirement: "90"},
			{Key: "India", NameES: "India", SlugES: "india", Requirement: "e-visa"},
		},
		SlugToKey: map[string]string{
			"estados-unidos": "United States",
			"india":          "India",
		},
		AltSlugToSlug: map[string]string{"usa": "estados-unidos"},
	}
	assert.NoError(t, services.WriteJSONAtomic(filepath.Join(dir, "Chile.json"), origin))
}

// setupStore returns a DatasetStore over a fresh temp dataset.
func setupStore(t *testing.T) *services.DatasetStore {
	t.Helper()
	dir := t.TempDir()
	writeTestDataset(t, dir)
	return services.NewDatasetStore(dir, "")
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	renderer, err := templates.NewRenderer()
	assert.NoError(t, err)
	e.Renderer = renderer

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}
