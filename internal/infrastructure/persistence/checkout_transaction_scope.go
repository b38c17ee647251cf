package persistence

import (
	"context"

	tradeapp "github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/domain/catalog"
	"github.com/electrostore/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements the checkout TransactionScope using GORM
// transactions. It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos tradeapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the checkout repositories
// within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// CartItemRepo returns the cart repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CartItemRepo() trade.CartItemRepository {
	return NewGormCartItemRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var _ tradeapp.TransactionScope = (*GormTransactionScope)(nil)
var _ tradeapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
