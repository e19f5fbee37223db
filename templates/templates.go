package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"necesitovisa/middleware"
	"necesitovisa/services/countrynames"
)

//go:embed layouts/*.html pages/*.html partials/*.html
var files embed.FS

// Renderer implements echo.Renderer. Each page is parsed together with the
// base layout and the shared partials, so pages can redefine layout blocks
// without colliding with each other.
type Renderer struct {
	templates map[string]*template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"cssVersion":     middleware.GetCSSVersion,
		"faviconVersion": middleware.GetFaviconVersion,
		"flag":           countrynames.FlagEmoji,
	}
}

// NewRenderer parses the embedded template set. It is called once at
// startup; a parse error here is a programming error and should stop boot.
func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(files, "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob pages: %w", err)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := filepath.Base(page)
		t, err := template.New("base.html").Funcs(funcMap()).ParseFS(files,
			"layouts/base.html", "partials/*.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = t
	}

	return &Renderer{templates: parsed}, nil
}

// Render executes the named page template into w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "base.html", data)
}
