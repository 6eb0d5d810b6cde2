package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/models"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Query DTO shared by the export endpoints. Every parameter is
// optional; the export recomputes the run from whatever is given plus
// the defaults.
type exportQuery struct {
	MaxConcentration  *float64 `form:"max_concentration"`
	ConcentrationStep *float64 `form:"concentration_step"`
	DecayRate         *float64 `form:"decay_rate"`
}

func (q exportQuery) parameters(def models.SimulationParameters) models.SimulationParameters {
	p := def
	if q.MaxConcentration != nil {
		p.MaxConcentration = *q.MaxConcentration
	}
	if q.ConcentrationStep != nil {
		p.ConcentrationStep = *q.ConcentrationStep
	}
	if q.DecayRate != nil {
		p.DecayRate = *q.DecayRate
	}
	return p
}

// runFromQuery binds the export query and recomputes the result.
// Responses for failures are already written when ok is false.
func (h *Handler) runFromQuery(c *gin.Context, logKey string) (models.SimulationResult, bool) {
	var q exportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQuery + err.Error()})
		return models.SimulationResult{}, false
	}
	params := q.parameters(h.services.Simulation.Defaults())
	res, err := h.services.Simulation.Run(params)
	if err != nil {
		h.respondSimulationError(c, logKey, err, "params", params)
		return models.SimulationResult{}, false
	}
	return res, true
}

func attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// @Summary      Download the applications table as CSV
// @Description  Dose-response table (ZOI, biofilm, RSA per concentration) for the given or default parameters
// @Tags         export
// @Produce      text/csv
// @Param        max_concentration   query  number  false  "Highest concentration, µg/ml"
// @Param        concentration_step  query  number  false  "Axis spacing, µg/ml"
// @Param        decay_rate          query  number  false  "Dye decay rate, 1/min"
// @Success      200  {string}  string  "CSV body"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/export/applications.csv [get]
func (h *Handler) exportApplicationsCSV(c *gin.Context) {
	res, ok := h.runFromQuery(c, "export_applications_failed")
	if !ok {
		return
	}
	body, err := h.services.Export.ApplicationsCSV(res.Applications)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportResult, "export_applications_failed", err)
		return
	}
	attachment(c, service.ApplicationsCSVName, csvContentType, body)
}

// @Summary      Download the dye degradation table as CSV
// @Tags         export
// @Produce      text/csv
// @Param        decay_rate  query  number  false  "Dye decay rate, 1/min"
// @Success      200  {string}  string  "CSV body"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/export/degradation.csv [get]
func (h *Handler) exportDegradationCSV(c *gin.Context) {
	res, ok := h.runFromQuery(c, "export_degradation_failed")
	if !ok {
		return
	}
	body, err := h.services.Export.DegradationCSV(res.Degradation)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportResult, "export_degradation_failed", err)
		return
	}
	attachment(c, service.DegradationCSVName, csvContentType, body)
}

// @Summary      Download the full result as an XLSX workbook
// @Description  Three sheets: applications, dye degradation and the summary metrics
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        max_concentration   query  number  false  "Highest concentration, µg/ml"
// @Param        concentration_step  query  number  false  "Axis spacing, µg/ml"
// @Param        decay_rate          query  number  false  "Dye decay rate, 1/min"
// @Success      200  {string}  string  "XLSX body"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/export/workbook.xlsx [get]
func (h *Handler) exportWorkbook(c *gin.Context) {
	res, ok := h.runFromQuery(c, "export_workbook_failed")
	if !ok {
		return
	}
	body, err := h.services.Export.Workbook(res)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportResult, "export_workbook_failed", err)
		return
	}
	attachment(c, service.WorkbookName, xlsxContentType, body)
}
