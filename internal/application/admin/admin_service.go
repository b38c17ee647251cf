package admin

import (
	"context"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/domain/identity"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recentOrderCount bounds the dashboard's recent order list
const recentOrderCount = 10

// AdminService handles the back-office operations
type AdminService struct {
	userRepo  identity.UserRepository
	orderRepo trade.OrderRepository
	logger    *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo identity.UserRepository,
	orderRepo trade.OrderRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetDashboardStats aggregates the numbers for the admin home screen
func (s *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	revenue, err := s.orderRepo.SumPaidRevenue(ctx)
	if err != nil {
		s.logger.Error("Failed to sum revenue", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	recent, err := s.orderRepo.FindRecent(ctx, recentOrderCount)
	if err != nil {
		s.logger.Error("Failed to load recent orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
	}

	return &DashboardStats{
		TotalUsers:   users,
		TotalOrders:  orders,
		TotalRevenue: revenue,
		RecentOrders: tradeapp.ToOrderResponses(recent),
	}, nil
}

// ListUsers returns a paginated user listing
func (s *AdminService) ListUsers(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserListItem], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	items := make([]UserListItem, len(users))
	for i, u := range users {
		items[i] = UserListItem{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		}
	}

	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateUserRole changes a user's role.
// An admin cannot demote themselves; that would lock the back office.
func (s *AdminService) UpdateUserRole(ctx context.Context, actorID, userID uuid.UUID, req UpdateUserRoleRequest) error {
	role := identity.Role(req.Role)

	if actorID == userID && role != identity.RoleAdmin {
		return shared.NewDomainError("SELF_DEMOTION", "You cannot remove your own admin role")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangeRole(role); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user role",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update role")
	}

	s.logger.Info("User role changed",
		zap.String("user_id", userID.String()),
		zap.String("actor_id", actorID.String()),
		zap.String("role", req.Role))
	return nil
}

// ListOrders returns a paginated, filterable order listing
func (s *AdminService) ListOrders(ctx context.Context, filter OrderListFilter) (*shared.Paginated[tradeapp.OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	orders, err := s.orderRepo.FindAll(ctx, filter.toOrderQuery(), domainFilter)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	result := shared.NewPaginated(tradeapp.ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateOrderStatus moves an order through its fulfillment states
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*tradeapp.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Error("Failed to save order status",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", orderID.String()),
		zap.String("status", req.Status))

	resp := tradeapp.ToOrderResponse(order)
	return &resp, nil
}
