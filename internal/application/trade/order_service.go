package trade

import (
	"context"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// decimalHundred converts major currency units to cents for the gateway
var decimalHundred = decimal.NewFromInt(100)

// OrderService handles checkout and order management
type OrderService struct {
	orderRepo   trade.OrderRepository
	cartRepo    trade.CartItemRepository
	productRepo catalog.ProductRepository
	txScope     TransactionScope
	gateway     CheckoutGateway
	logger      *zap.Logger
}

// NewOrderService creates a new order service.
// gateway may be nil when no payment provider is configured; card
// checkout then fails while cash-on-delivery keeps working.
func NewOrderService(
	orderRepo trade.OrderRepository,
	cartRepo trade.CartItemRepository,
	productRepo catalog.ProductRepository,
	txScope TransactionScope,
	gateway CheckoutGateway,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txScope:     txScope,
		gateway:     gateway,
		logger:      logger,
	}
}

// CreateOrder builds an order from the user's cart, reserves stock and,
// for card payments, opens a hosted checkout session
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*CheckoutResponse, error) {
	method := trade.PaymentMethod(req.PaymentMethod)
	if method == trade.PaymentMethodCard && s.gateway == nil {
		return nil, shared.NewDomainError("PAYMENTS_DISABLED", "Card payments are not configured")
	}

	cartItems, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart for checkout", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create order")
	}
	if len(cartItems) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart is empty")
	}

	// Snapshot product details into order lines and reserve stock
	orderItems := make([]trade.OrderItem, 0, len(cartItems))
	products := make([]*catalog.Product, 0, len(cartItems))
	checkoutItems := make([]CheckoutLineItem, 0, len(cartItems))

	for _, line := range cartItems {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if err := product.ReserveStock(line.Quantity); err != nil {
			return nil, err
		}

		orderItems = append(orderItems, trade.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		})
		products = append(products, product)
		checkoutItems = append(checkoutItems, CheckoutLineItem{
			Name:       product.Name,
			UnitAmount: product.Price.Mul(decimalHundred).IntPart(),
			Quantity:   int64(line.Quantity),
			ImageURL:   product.FirstImage(),
		})
	}

	order, err := trade.NewOrder(userID, method, req.ShippingAddress, orderItems)
	if err != nil {
		return nil, err
	}

	// Order, stock reservations and cart clearing commit atomically; a
	// failure on any write rolls back the whole checkout.
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		for _, product := range products {
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}
		return repos.CartItemRepo().DeleteByUser(ctx, userID)
	})
	if err != nil {
		s.logger.Error("Failed to persist checkout",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create order")
	}

	response := &CheckoutResponse{Order: ToOrderResponse(order)}

	if method == trade.PaymentMethodCard {
		session, err := s.gateway.CreateSession(ctx, CreateCheckoutSessionInput{
			OrderID: order.ID,
			UserID:  userID,
			Items:   checkoutItems,
		})
		if err != nil {
			s.logger.Error("Failed to open checkout session",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("PAYMENT_FAILED", "Failed to open payment session")
		}
		response.CheckoutURL = session.URL
		response.SessionID = session.SessionID
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("payment_method", string(method)),
		zap.String("total", order.TotalAmount.String()))

	return response, nil
}

// ConfirmPayment verifies a returned checkout session and marks the order paid
func (s *OrderService) ConfirmPayment(ctx context.Context, sessionID string) (*OrderResponse, error) {
	if s.gateway == nil {
		return nil, shared.NewDomainError("PAYMENTS_DISABLED", "Card payments are not configured")
	}

	confirmation, err := s.gateway.ConfirmSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to confirm checkout session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, shared.NewDomainError("PAYMENT_FAILED", "Failed to verify payment")
	}
	if !confirmation.Paid {
		return nil, shared.NewDomainError("PAYMENT_INCOMPLETE", "Payment has not completed")
	}

	order, err := s.orderRepo.FindByID(ctx, confirmation.OrderID)
	if err != nil {
		return nil, err
	}

	// Returning to the success page twice is fine
	if !order.IsPaid() {
		if err := order.MarkPaid(confirmation.TransactionID); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			s.logger.Error("Failed to save paid order",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
		}

		s.logger.Info("Order paid",
			zap.String("order_id", order.ID.String()),
			zap.String("transaction_id", confirmation.TransactionID))
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetOrder returns an order, restricted to its owner
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, shared.ErrForbidden
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListOrders returns the user's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}
	return ToOrderResponses(orders), nil
}
