package persistence

import (
	"context"
	"testing"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newCheckoutTestDB opens an in-memory SQLite database with the checkout tables
func newCheckoutTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.CartItem{},
	))
	return db
}

func newCheckoutOrder(t *testing.T, userID uuid.UUID, product *catalog.Product) *trade.Order {
	order, err := trade.NewOrder(userID, trade.PaymentMethodCashOnDelivery, "1 Main St", []trade.OrderItem{
		{ProductID: product.ID, ProductName: product.Name, UnitPrice: product.Price, Quantity: 1},
	})
	require.NoError(t, err)
	return order
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := newCheckoutTestDB(t)
	scope := NewGormTransactionScope(db)

	userID := uuid.New()
	product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(500), 5)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	cartItem, err := trade.NewCartItem(userID, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Create(cartItem).Error)

	order := newCheckoutOrder(t, userID, product)

	err = scope.Execute(context.Background(), func(repos tradeapp.TransactionalRepositories) error {
		if err := repos.OrderRepo().Save(context.Background(), order); err != nil {
			return err
		}
		product.StockQuantity = 4
		if err := repos.ProductRepo().Save(context.Background(), product); err != nil {
			return err
		}
		if err := repos.CartItemRepo().DeleteByUser(context.Background(), userID); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	// No order row survives the rollback
	var orderCount int64
	require.NoError(t, db.Model(&trade.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	// Stock and cart are untouched
	var stored catalog.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 5, stored.StockQuantity)

	var cartCount int64
	require.NoError(t, db.Model(&trade.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount)
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := newCheckoutTestDB(t)
	scope := NewGormTransactionScope(db)

	userID := uuid.New()
	product, err := catalog.NewProduct("Phone", "", "TestBrand", decimal.NewFromInt(500), 5)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	cartItem, err := trade.NewCartItem(userID, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Create(cartItem).Error)

	order := newCheckoutOrder(t, userID, product)

	err = scope.Execute(context.Background(), func(repos tradeapp.TransactionalRepositories) error {
		if err := repos.OrderRepo().Save(context.Background(), order); err != nil {
			return err
		}
		product.StockQuantity = 4
		if err := repos.ProductRepo().Save(context.Background(), product); err != nil {
			return err
		}
		return repos.CartItemRepo().DeleteByUser(context.Background(), userID)
	})
	require.NoError(t, err)

	saved, err := NewGormOrderRepository(db).FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)
	require.Len(t, saved.Items, 1)

	var stored catalog.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 4, stored.StockQuantity)

	var cartCount int64
	require.NoError(t, db.Model(&trade.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}
