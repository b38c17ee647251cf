package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"

	"github.com/electrostore/backend/internal/application/trade"
	"github.com/electrostore/backend/internal/infrastructure/config"
)

// defaultCurrency is used when the configuration does not name one
const defaultCurrency = "usd"

// StripeCheckoutGateway implements hosted checkout via Stripe Checkout Sessions
type StripeCheckoutGateway struct {
	config config.StripeConfig
	logger *zap.Logger
}

// NewStripeCheckoutGateway creates a new Stripe checkout gateway
func NewStripeCheckoutGateway(cfg config.StripeConfig, logger *zap.Logger) (*StripeCheckoutGateway, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe: secret key is required")
	}
	if cfg.SuccessURL == "" || cfg.CancelURL == "" {
		return nil, fmt.Errorf("stripe: success and cancel URLs are required")
	}

	stripe.Key = cfg.SecretKey

	return &StripeCheckoutGateway{
		config: cfg,
		logger: logger,
	}, nil
}

// CreateSession opens a hosted checkout session for an order
func (g *StripeCheckoutGateway) CreateSession(ctx context.Context, input trade.CreateCheckoutSessionInput) (*trade.CheckoutSession, error) {
	g.logger.Debug("Creating Stripe checkout session",
		zap.String("order_id", input.OrderID.String()),
		zap.Int("line_items", len(input.Items)))

	currency := g.config.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(input.Items))
	for i, item := range input.Items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.ImageURL})
		}

		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(g.config.SuccessURL),
		CancelURL:  stripe.String(g.config.CancelURL),
		Metadata: map[string]string{
			"order_id": input.OrderID.String(),
			"user_id":  input.UserID.String(),
		},
	}

	sess, err := session.New(params)
	if err != nil {
		g.logger.Error("Failed to create Stripe checkout session",
			zap.String("order_id", input.OrderID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	g.logger.Info("Created Stripe checkout session",
		zap.String("order_id", input.OrderID.String()),
		zap.String("session_id", sess.ID))

	return &trade.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// ConfirmSession verifies a session after the customer returns from Stripe
func (g *StripeCheckoutGateway) ConfirmSession(ctx context.Context, sessionID string) (*trade.CheckoutConfirmation, error) {
	g.logger.Debug("Confirming Stripe checkout session", zap.String("session_id", sessionID))

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		g.logger.Error("Failed to get Stripe checkout session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to get checkout session: %w", err)
	}

	orderID, err := uuid.Parse(sess.Metadata["order_id"])
	if err != nil {
		return nil, fmt.Errorf("stripe: session %s carries no valid order id: %w", sessionID, err)
	}

	confirmation := &trade.CheckoutConfirmation{
		OrderID: orderID,
		Paid:    sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	if sess.PaymentIntent != nil {
		confirmation.TransactionID = sess.PaymentIntent.ID
	}

	g.logger.Info("Confirmed Stripe checkout session",
		zap.String("session_id", sessionID),
		zap.String("order_id", orderID.String()),
		zap.Bool("paid", confirmation.Paid))

	return confirmation, nil
}

var _ trade.CheckoutGateway = (*StripeCheckoutGateway)(nil)
