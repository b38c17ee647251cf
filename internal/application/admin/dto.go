package admin

import (
	"time"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardStats summarizes the storefront for the admin home screen
type DashboardStats struct {
	TotalUsers   int64                    `json:"total_users"`
	TotalOrders  int64                    `json:"total_orders"`
	TotalRevenue decimal.Decimal          `json:"total_revenue"`
	RecentOrders []tradeapp.OrderResponse `json:"recent_orders"`
}

// UserListItem is one user row in the admin user listing
type UserListItem struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListFilter represents filter options for the admin user listing
type UserListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// UpdateUserRoleRequest changes a user's role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer admin"`
}

// OrderListFilter represents filter options for the admin order listing
type OrderListFilter struct {
	Status   string     `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"min=0"`
	PageSize int        `form:"page_size" binding:"min=0,max=100"`
}

// UpdateOrderStatusRequest changes an order's fulfillment status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// toOrderQuery converts the listing filter to a domain query
func (f OrderListFilter) toOrderQuery() trade.OrderQuery {
	query := trade.OrderQuery{
		DateFrom: f.DateFrom,
		DateTo:   f.DateTo,
	}
	if f.Status != "" {
		status := trade.OrderStatus(f.Status)
		query.Status = &status
	}
	return query
}
