package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"necesitovisa/services"
)

// siteFaqItems is the general visa glossary shown at /faq, independent of any
// origin/destination pair.
var siteFaqItems = []services.VisaFaqItem{
	{
		Question: "¿Qué es una visa?",
		Answer:   "Una visa es un permiso oficial emitido por un país que autoriza a una persona extranjera a entrar, permanecer o transitar por su territorio durante un tiempo y con un propósito específico (turismo, trabajo, estudio, tránsito). Los requisitos dependen de la nacionalidad y el destino.",
	},
	{
		Question: "¿Qué significa «no necesita visa»?",
		Answer:   "Significa que puedes ingresar al país sin solicitar una visa previa, normalmente por turismo y por un tiempo limitado. Aun así, pueden exigirse otros requisitos como pasaporte vigente, pasaje de salida, seguro o fondos suficientes.",
	},
	{
		Question: "¿Qué es una e-Visa?",
		Answer:   "Una e-Visa es una visa que se solicita completamente por internet, sin acudir a una embajada. Una vez aprobada, queda asociada electrónicamente a tu pasaporte y se verifica al momento del ingreso al país.",
	},
	{
		Question: "¿Qué es una ESTA, eTA o ETA?",
		Answer:   "Las autorizaciones electrónicas como ESTA, eTA o ETA no son visas tradicionales. Permiten viajar por turismo o tránsito sin visa, pero deben solicitarse online antes del viaje y pueden tener costo y vigencia limitada.",
	},
	{
		Question: "¿Quién otorga las visas y autorizaciones de viaje?",
		Answer:   "Las visas y autorizaciones solo son otorgadas por autoridades oficiales del país de destino, como embajadas, consulados o servicios de inmigración. Ninguna aerolínea ni sitio privado emite visas.",
	},
	{
		Question: "¿Pueden cambiar los requisitos de visa?",
		Answer:   "Sí. Los requisitos migratorios pueden cambiar en cualquier momento. Por eso siempre se recomienda verificar la información directamente en fuentes oficiales antes de viajar.",
	},
}

// Faq renders the general FAQ glossary page.
func (h *VisaHandler) Faq(c echo.Context) error {
	return c.Render(http.StatusOK, "faq.html", map[string]interface{}{
		"SEO": GetSEO("faq"),
		"Faq": siteFaqItems,
	})
}
