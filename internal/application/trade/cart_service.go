package trade

import (
	"context"
	"errors"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService handles shopping cart operations
type CartService struct {
	cartRepo    trade.CartItemRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo trade.CartItemRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's cart with product details and totals.
// Lines whose product has disappeared from the catalog are dropped.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	response := &CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			s.logger.Error("Failed to load cart product",
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		response.Items = append(response.Items, CartItemResponse{
			ID:            item.ID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductImage:  product.FirstImage(),
			UnitPrice:     product.Price,
			Quantity:      item.Quantity,
			Subtotal:      subtotal,
			StockQuantity: product.StockQuantity,
		})
		response.ItemCount += item.Quantity
		response.Total = response.Total.Add(subtotal)
	}

	return response, nil
}

// AddItem adds a product to the cart, merging with an existing line
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available")
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, req.ProductID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to load cart line", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}

	if existing != nil {
		if !product.InStock(existing.Quantity + req.Quantity) {
			return nil, shared.ErrInsufficientStock
		}
		if err := existing.AddQuantity(req.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			s.logger.Error("Failed to save cart line", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
		}
	} else {
		if !product.InStock(req.Quantity) {
			return nil, shared.ErrInsufficientStock
		}
		item, err := trade.NewCartItem(userID, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, item); err != nil {
			s.logger.Error("Failed to save cart line", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
		}
	}

	return s.GetCart(ctx, userID)
}

// UpdateItem changes a cart line's quantity
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, shared.ErrForbidden
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock(req.Quantity) {
		return nil, shared.ErrInsufficientStock
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		s.logger.Error("Failed to save cart line", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update cart")
	}

	return s.GetCart(ctx, userID)
}

// RemoveItem deletes a cart line
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, shared.ErrForbidden
	}

	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// ClearCart removes every line from the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to clear cart")
	}
	return nil
}

// CountItems returns the summed quantity in the user's cart
func (s *CartService) CountItems(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.cartRepo.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count cart items", zap.Error(err))
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to count cart items")
	}
	return count, nil
}
