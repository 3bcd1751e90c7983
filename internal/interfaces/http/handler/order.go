package handler

import (
	appdining "github.com/RayLight-369/rms/internal/application/dining"
	"github.com/RayLight-369/rms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order lifecycle API endpoints
type OrderHandler struct {
	BaseHandler
	service *appdining.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *appdining.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order lifecycle routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/board", h.Board)
		orders.GET("/:id", h.Get)
		orders.GET("/:id/receipt", h.Receipt)
		orders.POST("/:id/advance", h.Advance)
		orders.PUT("/:id/status", h.SetStatus)
	}
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter appdining.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Board handles GET /orders/board
func (h *OrderHandler) Board(c *gin.Context) {
	board, err := h.service.Board(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, board)
}

// Advance handles POST /orders/:id/advance
func (h *OrderHandler) Advance(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.Advance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// SetStatus handles PUT /orders/:id/status
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appdining.SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.service.SetStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Receipt handles GET /orders/:id/receipt
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	receipt, err := h.service.Receipt(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

func (h *OrderHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BindingError(c, err)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}
