package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *tradeapp.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *tradeapp.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// Get returns the caller's cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// AddItem adds a product to the caller's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tradeapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// UpdateItem changes the quantity of a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	var req tradeapp.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.cartService.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// RemoveItem removes a line from the caller's cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Clear empties the caller's cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Count returns the number of items in the caller's cart
func (h *CartHandler) Count(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.cartService.CountItems(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"count": count})
}
