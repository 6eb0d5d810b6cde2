package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

const pngContentType = "image/png"

// @Summary      Render a result curve as PNG
// @Description  Chart names: inhibition.png, biofilm.png, antioxidant.png, degradation.png
// @Tags         charts
// @Produce      png
// @Param        chart               path   string  true   "Chart name with .png extension"
// @Param        max_concentration   query  number  false  "Highest concentration, µg/ml"
// @Param        concentration_step  query  number  false  "Axis spacing, µg/ml"
// @Param        decay_rate          query  number  false  "Dye decay rate, 1/min"
// @Success      200  {string}  string  "PNG body"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/charts/{chart} [get]
func (h *Handler) getChart(c *gin.Context) {
	kind := service.ChartKind(strings.TrimSuffix(c.Param("chart"), ".png"))

	res, ok := h.runFromQuery(c, "chart_run_failed")
	if !ok {
		return
	}

	img, err := h.services.Render.Chart(kind, res)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChart) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "chart_render_failed", err, "chart", kind)
		return
	}
	c.Data(http.StatusOK, pngContentType, img)
}
