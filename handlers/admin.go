package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"necesitovisa/services"
)

// AdminHandler serves the key-protected operations dashboard.
type AdminHandler struct {
	Store *services.DatasetStore
}

func NewAdminHandler(store *services.DatasetStore) *AdminHandler {
	return &AdminHandler{Store: store}
}

// Dashboard shows dataset and Henley freshness plus export links.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	page := map[string]interface{}{
		"SEO":         GetSEO("admin"),
		"OriginCount": len(h.Store.ListAll()),
		"Freshness":   services.GetDatasetFreshness(h.Store.GeneratedAt(), time.Now()),
		"Key":         c.QueryParam("key"),
	}

	if henley := h.Store.Henley(); henley != nil {
		page["HenleyGeneratedAt"] = henley.GeneratedAt
		page["HenleyOriginCount"] = len(henley.Matrix)
	}

	return c.Render(http.StatusOK, "admin.html", page)
}

// Export streams the curated requirements as a spreadsheet.
func (h *AdminHandler) Export(c echo.Context) error {
	buf, err := services.GenerateRequirementsExcel(h.Store)
	if err != nil {
		c.Logger().Error("Failed to generate requirements export: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "No se pudo generar la exportación")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="requisitos-visa.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
