package handler

import (
	appmenu "github.com/RayLight-369/rms/internal/application/menu"
	"github.com/RayLight-369/rms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler handles menu catalog API endpoints
type MenuHandler struct {
	BaseHandler
	service *appmenu.MenuItemService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(service *appmenu.MenuItemService) *MenuHandler {
	return &MenuHandler{service: service}
}

// RegisterRoutes registers menu catalog routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/menu-items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.GET("/:id", h.Get)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// List handles GET /menu-items
func (h *MenuHandler) List(c *gin.Context) {
	var filter appmenu.MenuItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get handles GET /menu-items/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create handles POST /menu-items
func (h *MenuHandler) Create(c *gin.Context) {
	var req appmenu.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update handles PUT /menu-items/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appmenu.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete handles DELETE /menu-items/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *MenuHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return uuid.Nil, false
	}
	return id, true
}
