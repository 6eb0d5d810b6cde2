package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var pageContent embed.FS

var indexTpl = template.Must(template.New("index.html").ParseFS(pageContent, "templates/index.html"))

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.indexPage)
}

// indexPage serves the embedded lab page, seeded with the defaults and
// bounds so the sliders render without an extra round trip.
func (h *Handler) indexPage(c *gin.Context) {
	data := gin.H{
		"Defaults": h.services.Simulation.Defaults(),
		"Bounds":   h.services.Simulation.Bounds(),
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := indexTpl.Execute(c.Writer, data); err != nil && h.log != nil {
		h.log.Errorw("index_render_failed", "err", err)
	}
}
