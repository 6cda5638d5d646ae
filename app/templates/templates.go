// Package templates embeds the HTML views so pages render identically
// regardless of the process working directory.
package templates

import (
	"embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"

	"github.com/angdmz/mattilda/app/models"
)

//go:embed views
var viewsFS embed.FS

// Engine builds the template engine with the app's helper functions.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	engine.Directory = "/views"
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.AddFunc("money", models.FormatCents)
	engine.AddFunc("date", func(v interface{}) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("2006-01-02")
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		}
		return ""
	})
	engine.AddFunc("deref", func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	})
	return engine
}
