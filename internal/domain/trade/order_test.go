package trade

import (
	"testing"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderItem(name string, price float64, qty int) OrderItem {
	return OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   uuid.New(),
		ProductName: name,
		UnitPrice:   decimal.NewFromFloat(price),
		Quantity:    qty,
	}
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()
	items := []OrderItem{
		orderItem("Galaxy S24", 799.99, 2),
		orderItem("USB-C Cable", 9.99, 1),
	}

	order, err := NewOrder(userID, PaymentMethodCard, "42 Main St", items)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(1609.97)))
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestNewOrderValidation(t *testing.T) {
	items := []OrderItem{orderItem("Pixel 9", 699, 1)}

	_, err := NewOrder(uuid.Nil, PaymentMethodCard, "addr", items)
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), PaymentMethodCard, "addr", nil)
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), PaymentMethodCard, "", items)
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), PaymentMethod("wire"), "addr", items)
	assert.Error(t, err)
}

func TestOrderMarkPaid(t *testing.T) {
	order, err := NewOrder(uuid.New(), PaymentMethodCard, "addr",
		[]OrderItem{orderItem("Pixel 9", 699, 1)})
	require.NoError(t, err)

	require.NoError(t, order.MarkPaid("pi_123"))
	assert.True(t, order.IsPaid())
	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Equal(t, "pi_123", order.TransactionID)

	assert.Error(t, order.MarkPaid("pi_456"))
	assert.Equal(t, "pi_123", order.TransactionID)
}

func TestOrderUpdateStatus(t *testing.T) {
	order, err := NewOrder(uuid.New(), PaymentMethodCashOnDelivery, "addr",
		[]OrderItem{orderItem("Pixel 9", 699, 1)})
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(OrderStatusShipped))
	assert.Equal(t, OrderStatusShipped, order.Status)

	assert.Error(t, order.UpdateStatus(OrderStatus("lost")))

	require.NoError(t, order.UpdateStatus(OrderStatusCancelled))
	assert.Error(t, order.UpdateStatus(OrderStatusShipped))
}
