package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/services"
)

type ReportHandler struct {
	ReportService *services.ReportService
}

func NewReportHandler(r *services.ReportService) *ReportHandler {
	return &ReportHandler{ReportService: r}
}

// Plots returns the three report images as embeddable base64 PNG payloads.
func (h *ReportHandler) Plots(c *gin.Context) {
	plots, err := h.ReportService.GeneratePlots()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plots)
}
