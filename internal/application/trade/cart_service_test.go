package trade

import (
	"context"
	"testing"

	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCartService() (*CartService, *MockCartItemRepository, *MockProductRepository) {
	cartRepo := new(MockCartItemRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(cartRepo, productRepo, zap.NewNop())
	return service, cartRepo, productRepo
}

func TestCartService_GetCart(t *testing.T) {
	service, cartRepo, productRepo := newTestCartService()

	userID := uuid.New()
	product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromFloat(599.99), 10)
	require.NoError(t, err)
	item, err := trade.NewCartItem(userID, product.ID, 2)
	require.NoError(t, err)

	cartRepo.On("FindByUser", mock.Anything, userID).Return([]trade.CartItem{*item}, nil)
	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	cart, err := service.GetCart(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Phone", cart.Items[0].ProductName)
	assert.Equal(t, 2, cart.ItemCount)
	assert.True(t, decimal.NewFromFloat(1199.98).Equal(cart.Total))
}

func TestCartService_GetCart_DropsDeletedProducts(t *testing.T) {
	service, cartRepo, productRepo := newTestCartService()

	userID := uuid.New()
	item, err := trade.NewCartItem(userID, uuid.New(), 1)
	require.NoError(t, err)

	cartRepo.On("FindByUser", mock.Anything, userID).Return([]trade.CartItem{*item}, nil)
	productRepo.On("FindByID", mock.Anything, item.ProductID).Return(nil, shared.ErrNotFound)

	cart, err := service.GetCart(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("adds a new line", func(t *testing.T) {
		service, cartRepo, productRepo := newTestCartService()

		userID := uuid.New()
		product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(100), 10)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindByUserAndProduct", mock.Anything, userID, product.ID).Return(nil, shared.ErrNotFound)
		cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(i *trade.CartItem) bool {
			return i.UserID == userID && i.ProductID == product.ID && i.Quantity == 2
		})).Return(nil)
		cartRepo.On("FindByUser", mock.Anything, userID).Return([]trade.CartItem{}, nil)

		_, err = service.AddItem(context.Background(), userID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  2,
		})

		require.NoError(t, err)
		cartRepo.AssertExpectations(t)
	})

	t.Run("merges with an existing line", func(t *testing.T) {
		service, cartRepo, productRepo := newTestCartService()

		userID := uuid.New()
		product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(100), 10)
		require.NoError(t, err)
		existing, err := trade.NewCartItem(userID, product.ID, 3)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindByUserAndProduct", mock.Anything, userID, product.ID).Return(existing, nil)
		cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(i *trade.CartItem) bool {
			return i.ID == existing.ID && i.Quantity == 5
		})).Return(nil)
		cartRepo.On("FindByUser", mock.Anything, userID).Return([]trade.CartItem{}, nil)

		_, err = service.AddItem(context.Background(), userID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  2,
		})

		require.NoError(t, err)
		cartRepo.AssertExpectations(t)
	})

	t.Run("rejects exceeding stock", func(t *testing.T) {
		service, cartRepo, productRepo := newTestCartService()

		userID := uuid.New()
		product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(100), 2)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		cartRepo.On("FindByUserAndProduct", mock.Anything, userID, product.ID).Return(nil, shared.ErrNotFound)

		_, err = service.AddItem(context.Background(), userID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects inactive products", func(t *testing.T) {
		service, cartRepo, productRepo := newTestCartService()

		userID := uuid.New()
		product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(100), 10)
		require.NoError(t, err)
		require.NoError(t, product.Deactivate())

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err = service.AddItem(context.Background(), userID, AddCartItemRequest{
			ProductID: product.ID,
			Quantity:  1,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRODUCT_INACTIVE", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCartService_UpdateItem_OwnershipEnforced(t *testing.T) {
	service, cartRepo, _ := newTestCartService()

	owner := uuid.New()
	item, err := trade.NewCartItem(owner, uuid.New(), 1)
	require.NoError(t, err)

	cartRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)

	_, err = service.UpdateItem(context.Background(), uuid.New(), item.ID, UpdateCartItemRequest{Quantity: 2})

	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, cartRepo, _ := newTestCartService()

	userID := uuid.New()
	item, err := trade.NewCartItem(userID, uuid.New(), 1)
	require.NoError(t, err)

	cartRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	cartRepo.On("Delete", mock.Anything, item.ID).Return(nil)
	cartRepo.On("FindByUser", mock.Anything, userID).Return([]trade.CartItem{}, nil)

	cart, err := service.RemoveItem(context.Background(), userID, item.ID)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	cartRepo.AssertExpectations(t)
}
