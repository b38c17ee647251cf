package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
)

// OrderHandler handles checkout and order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Create checks out the caller's cart into a new order
func (h *OrderHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ConfirmPayment finalizes an order after the payment provider redirects back
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		h.BadRequest(c, "session_id is required")
		return
	}

	order, err := h.orderService.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns the caller's orders, newest first
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns one of the caller's orders
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
