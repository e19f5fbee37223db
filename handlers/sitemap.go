package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"necesitovisa/services"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapHandler serves a dynamic XML sitemap covering the static pages
// plus every published origin and destination page.
type SitemapHandler struct {
	Store *services.DatasetStore
}

func NewSitemapHandler(store *services.DatasetStore) *SitemapHandler {
	return &SitemapHandler{Store: store}
}

// Get generates the sitemap from the current dataset.
func (h *SitemapHandler) Get(c echo.Context) error {
	lastMod := h.Store.GeneratedAt()

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/visa", ChangeFreq: "weekly", Priority: 0.9, LastMod: lastMod},
		{Loc: baseURL + "/faq", ChangeFreq: "monthly", Priority: 0.5},
	}

	for _, entry := range h.Store.ListAll() {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/visa/" + entry.SlugES,
			ChangeFreq: "monthly",
			Priority:   0.8,
			LastMod:    lastMod,
		})

		data := h.Store.OriginData(entry.Key)
		if data == nil {
			continue
		}
		for _, dest := range data.Destinations {
			urls = append(urls, SitemapURL{
				Loc:        baseURL + "/visa/" + entry.SlugES + "/" + dest.SlugES,
				ChangeFreq: "monthly",
				Priority:   0.7,
				LastMod:    lastMod,
			})
		}
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots serves robots.txt: the admin panel stays out of crawlers.
func Robots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nDisallow: /admin\nSitemap: "+baseURL+"/sitemap.xml\n")
}
