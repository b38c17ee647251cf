package trade

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutLineItem is one order line sent to the payment gateway.
// UnitAmount is in the currency's minor unit (cents).
type CheckoutLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
	ImageURL   string
}

// CreateCheckoutSessionInput carries what the gateway needs to open a session
type CreateCheckoutSessionInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Items   []CheckoutLineItem
}

// CheckoutSession is a hosted payment session the customer is redirected to
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutConfirmation is the gateway's verdict on a completed session
type CheckoutConfirmation struct {
	OrderID       uuid.UUID
	TransactionID string
	Paid          bool
}

// CheckoutGateway abstracts the hosted-checkout payment provider
type CheckoutGateway interface {
	// CreateSession opens a hosted checkout session for an order
	CreateSession(ctx context.Context, input CreateCheckoutSessionInput) (*CheckoutSession, error)

	// ConfirmSession verifies a session after the customer returns and
	// reports whether it was actually paid
	ConfirmSession(ctx context.Context, sessionID string) (*CheckoutConfirmation, error)
}
