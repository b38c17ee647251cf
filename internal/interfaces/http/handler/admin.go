package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminapp "github.com/electrostore/backend/internal/application/admin"
)

// AdminHandler handles the back-office endpoints
type AdminHandler struct {
	BaseHandler
	adminService *adminapp.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *adminapp.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Dashboard returns aggregate storefront statistics
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListUsers returns a paginated user listing
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter adminapp.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.adminService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateUserRole changes a user's role. Admins cannot demote themselves.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req adminapp.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.adminService.UpdateUserRole(c.Request.Context(), actorID, userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListOrders returns a paginated order listing across all customers
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var filter adminapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.adminService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateOrderStatus moves an order through its fulfillment lifecycle
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req adminapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, err := h.adminService.UpdateOrderStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
