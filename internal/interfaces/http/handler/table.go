package handler

import (
	appdining "github.com/RayLight-369/rms/internal/application/dining"
	"github.com/gin-gonic/gin"
)

// TableHandler handles floor plan API endpoints
type TableHandler struct {
	BaseHandler
	service *appdining.TableService
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(service *appdining.TableService) *TableHandler {
	return &TableHandler{service: service}
}

// RegisterRoutes registers floor plan routes
func (h *TableHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tables", h.List)
}

// List handles GET /tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tables)
}
