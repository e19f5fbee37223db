package handlers

import (
	"fmt"

	"necesitovisa/models"
)

const (
	baseURL        = "https://necesitovisa.com"
	defaultOGImage = "https://necesitovisa.com/static/images/og-image.png"
)

// SEO configurations for static pages
var pageSEO = map[string]*models.SEO{
	"home": {
		Title:       "NecesitoVisa - ¿Necesito visa para viajar?",
		Description: "Consulta en segundos si necesitas visa según tu pasaporte. Requisitos de entrada, estadía máxima, fuentes oficiales y contactos de embajadas para viajeros hispanohablantes.",
		Keywords:    "necesito visa, requisitos de visa, visado, pasaporte, viajar sin visa",
		Canonical:   baseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"visa_index": {
		Title:       "Requisitos de visa por pasaporte | NecesitoVisa",
		Description: "Elige el país que emitió tu pasaporte y descubre a qué destinos puedes viajar sin visa, con visa electrónica o con visa de entrada.",
		Keywords:    "visa por pasaporte, índice de pasaportes, requisitos de entrada",
		Canonical:   baseURL + "/visa",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"faq": {
		Title:       "Preguntas frecuentes sobre visas y autorizaciones | NecesitoVisa",
		Description: "Respuestas claras sobre visas, eVisa y autorizaciones electrónicas como ESTA o eTA. Información general y actualizada.",
		Keywords:    "qué es una visa, evisa, esta, eta, autorización de viaje",
		Canonical:   baseURL + "/faq",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"admin": {
		Title:       "Panel de administración | NecesitoVisa",
		Description: "Panel interno de NecesitoVisa.",
		OGType:      "website",
		TwitterCard: "summary",
		NoIndex:     true,
	},
	"not_found": {
		Title:       "Página no encontrada | NecesitoVisa",
		Description: "La página que buscas no existe.",
		OGType:      "website",
		TwitterCard: "summary",
		NoIndex:     true,
	},
}

// GetSEO returns the SEO configuration for a static page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		return &copy
	}
	return nil
}

// OriginSEO builds the SEO block for an origin page.
func OriginSEO(originName, originSlug string) *models.SEO {
	seo := models.DefaultSEO(
		fmt.Sprintf("¿A dónde puedo viajar con pasaporte de %s? | NecesitoVisa", originName),
		fmt.Sprintf("Lista completa de destinos para el pasaporte de %s: países sin visa, con visa electrónica y con visa de entrada, según el índice de pasaportes.", originName),
	)
	seo.Canonical = fmt.Sprintf("%s/visa/%s", baseURL, originSlug)
	seo.OGImage = defaultOGImage
	return seo
}

// DestinationSEO builds the SEO block for an origin-destination page.
func DestinationSEO(originName, originSlug, destName, destSlug string) *models.SEO {
	seo := models.DefaultSEO(
		fmt.Sprintf("¿Necesito visa para viajar de %s a %s? | NecesitoVisa", originName, destName),
		fmt.Sprintf("Requisitos de visa para ciudadanos de %s que viajan a %s: tipo de visado, estadía máxima, documentos exigidos y fuentes oficiales.", originName, destName),
	)
	seo.Canonical = fmt.Sprintf("%s/visa/%s/%s", baseURL, originSlug, destSlug)
	seo.OGImage = defaultOGImage
	return seo
}
