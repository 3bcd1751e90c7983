package handler

import (
	appreport "github.com/RayLight-369/rms/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles dashboard reporting API endpoints
type ReportHandler struct {
	BaseHandler
	service *appreport.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *appreport.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/summary", h.Summary)
}

// Summary handles GET /reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
