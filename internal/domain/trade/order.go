package trade

import (
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMethod represents how the order is paid
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
)

// OrderItem is a price-snapshotted product line of an order
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal returns the line total
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a placed storefront order with its snapshotted lines
type Order struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	TransactionID   string          `gorm:"type:varchar(255)"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order from snapshotted lines.
// Prices are captured at order time; later catalog changes do not
// affect existing orders.
func NewOrder(userID uuid.UUID, method PaymentMethod, shippingAddress string, items []OrderItem) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address is required")
	}
	if method != PaymentMethodCard && method != PaymentMethodCashOnDelivery {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            OrderStatusPending,
		PaymentStatus:     PaymentStatusPending,
		PaymentMethod:     method,
		ShippingAddress:   shippingAddress,
	}

	total := decimal.Zero
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].BaseEntity = shared.NewBaseEntity()
		}
		items[i].OrderID = order.ID
		total = total.Add(items[i].Subtotal())
	}
	order.Items = items
	order.TotalAmount = total

	return order, nil
}

// MarkPaid records a successful payment and moves the order to processing
func (o *Order) MarkPaid(transactionID string) error {
	if o.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Order is already paid")
	}
	if o.Status == OrderStatusCancelled {
		return shared.ErrInvalidState
	}

	o.PaymentStatus = PaymentStatusPaid
	o.TransactionID = transactionID
	o.Status = OrderStatusProcessing
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// UpdateStatus moves the order to a new fulfillment status
func (o *Order) UpdateStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if o.Status == OrderStatusCancelled && status != OrderStatusCancelled {
		return shared.ErrInvalidState
	}

	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// IsPaid returns true if payment has been captured
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}
