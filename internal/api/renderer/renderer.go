package renderer

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"openhiring/pkg/utils"
)

//go:embed templates/*.html templates/admin/*.html
var templateFS embed.FS

// Renderer serves the embedded HTML templates through echo. Stored text
// is escaped at intake, so the trusted and nl2br helpers exist to emit
// it without escaping a second time.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded template set.
func New() *Renderer {
	funcs := template.FuncMap{
		"trusted": func(s string) template.HTML {
			return template.HTML(s)
		},
		"nl2br": func(s string) template.HTML {
			return template.HTML(strings.ReplaceAll(s, "\n", "<br>"))
		},
		"truncate": utils.TruncateText,
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		"until": func(n int) []int {
			pages := make([]int, n)
			for i := range pages {
				pages[i] = i + 1
			}
			return pages
		},
	}

	return &Renderer{
		templates: template.Must(
			template.New("").Funcs(funcs).ParseFS(templateFS,
				"templates/*.html", "templates/admin/*.html"),
		),
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
