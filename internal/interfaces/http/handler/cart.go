package handler

import (
	appdining "github.com/RayLight-369/rms/internal/application/dining"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles the waiter cart API endpoints
type CartHandler struct {
	BaseHandler
	service *appdining.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *appdining.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers waiter cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.DELETE("", h.Clear)
		cart.PUT("/table", h.SelectTable)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:menuItemID", h.SetQuantity)
		cart.DELETE("/items/:menuItemID", h.RemoveItem)
		cart.POST("/submit", h.Submit)
	}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.service.Get(c.Request.Context()))
}

// SelectTable handles PUT /cart/table
func (h *CartHandler) SelectTable(c *gin.Context) {
	var req appdining.SelectTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.service.SelectTable(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req appdining.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// SetQuantity handles PUT /cart/items/:menuItemID
func (h *CartHandler) SetQuantity(c *gin.Context) {
	menuItemID, ok := h.parseMenuItemID(c)
	if !ok {
		return
	}

	var req appdining.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	cart, err := h.service.SetQuantity(c.Request.Context(), menuItemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem handles DELETE /cart/items/:menuItemID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	menuItemID, ok := h.parseMenuItemID(c)
	if !ok {
		return
	}
	h.Success(c, h.service.RemoveItem(c.Request.Context(), menuItemID))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.Success(c, h.service.Clear(c.Request.Context()))
}

// Submit handles POST /cart/submit
func (h *CartHandler) Submit(c *gin.Context) {
	var req appdining.SubmitCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

func (h *CartHandler) parseMenuItemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("menuItemID"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID")
		return uuid.Nil, false
	}
	return id, true
}
