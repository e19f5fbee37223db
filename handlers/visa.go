package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"necesitovisa/models"
	"necesitovisa/services"
)

// VisaHandler serves the public visa-requirement pages from the generated
// dataset. Raw dataset strings pass through the sanitizer before rendering
// because the source matrix is third-party data.
type VisaHandler struct {
	Store     *services.DatasetStore
	Sanitizer *bluemonday.Policy
}

func NewVisaHandler(store *services.DatasetStore) *VisaHandler {
	return &VisaHandler{
		Store:     store,
		Sanitizer: bluemonday.StrictPolicy(),
	}
}

// DestinationView is one row of the origin page.
type DestinationView struct {
	NameES      string
	SlugES      string
	Requirement services.NormalizedRequirement
}

// Home renders the landing page with the curated origin list.
func (h *VisaHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", map[string]interface{}{
		"SEO":       GetSEO("home"),
		"Origins":   models.OriginCountries,
		"Freshness": services.GetDatasetFreshness(h.Store.GeneratedAt(), time.Now()),
	})
}

// VisaIndex renders the full origin list from the generated index.
func (h *VisaHandler) VisaIndex(c echo.Context) error {
	return c.Render(http.StatusOK, "visa_index.html", map[string]interface{}{
		"SEO":     GetSEO("visa_index"),
		"Entries": h.Store.ListAll(),
	})
}

// Origin renders the destination list for one passport. Legacy slugs get a
// permanent redirect to the canonical Spanish slug.
func (h *VisaHandler) Origin(c echo.Context) error {
	slug := c.Param("origen")

	resolution, ok := h.Store.ResolveOrigin(slug)
	if !ok {
		return h.renderNotFound(c, "No encontramos ese país de origen.")
	}
	if resolution.Redirected {
		return c.Redirect(http.StatusMovedPermanently, "/visa/"+resolution.CanonicalSlug)
	}

	data := h.Store.OriginData(resolution.Entry.Key)
	if data == nil {
		return h.renderNotFound(c, "No hay datos publicados para ese país todavía.")
	}

	destinations := make([]DestinationView, 0, len(data.Destinations))
	for _, dest := range data.Destinations {
		// Empty cells and the origin's own -1 cell carry no requirement.
		if services.Classify(dest.Requirement).Skip {
			continue
		}
		destinations = append(destinations, DestinationView{
			NameES:      dest.NameES,
			SlugES:      dest.SlugES,
			Requirement: services.NormalizeRequirement(h.Sanitizer.Sanitize(dest.Requirement)),
		})
	}

	originName := data.OriginNameES
	if originName == "" {
		originName = resolution.Entry.NameEN
	}

	return c.Render(http.StatusOK, "origin.html", map[string]interface{}{
		"SEO":          OriginSEO(originName, resolution.CanonicalSlug),
		"OriginName":   originName,
		"OriginSlug":   resolution.CanonicalSlug,
		"Destinations": destinations,
	})
}

// Destination renders the requirement page for one origin-destination pair.
// Both path segments redirect to their canonical slugs before rendering.
func (h *VisaHandler) Destination(c echo.Context) error {
	originSlug := c.Param("origen")
	destSlug := c.Param("destino")

	originRes, ok := h.Store.ResolveOrigin(originSlug)
	if !ok {
		return h.renderNotFound(c, "No encontramos ese país de origen.")
	}

	data := h.Store.OriginData(originRes.Entry.Key)
	if data == nil {
		return h.renderNotFound(c, "No hay datos publicados para ese país todavía.")
	}

	destRes, ok := h.Store.ResolveDestination(data, destSlug)
	if !ok {
		return h.renderNotFound(c, "No encontramos ese destino para el pasaporte seleccionado.")
	}

	if originRes.Redirected || destRes.Redirected {
		return c.Redirect(http.StatusMovedPermanently,
			"/visa/"+originRes.CanonicalSlug+"/"+destRes.CanonicalSlug)
	}

	requirement := services.NormalizeRequirement(h.Sanitizer.Sanitize(destRes.Destination.Requirement))

	originName := data.OriginNameES
	if originName == "" {
		originName = originRes.Entry.NameEN
	}

	page := map[string]interface{}{
		"SEO":             DestinationSEO(originName, originRes.CanonicalSlug, destRes.Destination.NameES, destRes.CanonicalSlug),
		"OriginName":      originName,
		"OriginSlug":      originRes.CanonicalSlug,
		"DestinationName": destRes.Destination.NameES,
		"DestinationSlug": destRes.CanonicalSlug,
		"Requirement":     requirement,
		"Explanation":     services.GetRequirementExplanation(requirement.Type, requirement.Days),
		"Faq":             services.GetVisaFaq(string(requirement.Type), destRes.Destination.NameES),
	}

	// Curated detail exists only for the editorially maintained pairs; the
	// rest of the matrix renders the classified requirement alone.
	if detail, found := services.FindRequirement(originRes.CanonicalSlug, destRes.CanonicalSlug); found {
		detail = services.ApplyHenleyOverride(detail, h.henleyEntry(originRes.CanonicalSlug, destRes.CanonicalSlug))
		review := services.GetReviewMetadata(detail.LastReviewed, time.Now())
		page["Detail"] = &detail
		page["Review"] = review
	}

	return c.Render(http.StatusOK, "destination.html", page)
}

// henleyEntry looks up the overlay cell for a curated pair via the ISO codes
// of the curated country lists.
func (h *VisaHandler) henleyEntry(originSlug, destSlug string) *models.HenleyVisaEntry {
	var originISO, destISO string
	for _, origin := range models.OriginCountries {
		if origin.Slug == originSlug {
			originISO = origin.ISO2
			break
		}
	}
	for _, dest := range models.DestinationCountries {
		if dest.Slug == destSlug {
			destISO = dest.ISO2
			break
		}
	}
	return services.HenleyEntryFor(h.Store.Henley(), originISO, destISO)
}

func (h *VisaHandler) renderNotFound(c echo.Context, message string) error {
	return c.Render(http.StatusNotFound, "error.html", map[string]interface{}{
		"SEO":     GetSEO("not_found"),
		"Title":   "Página no encontrada",
		"Message": message,
	})
}
