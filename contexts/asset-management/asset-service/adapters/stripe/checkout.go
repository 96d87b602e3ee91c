package stripeadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const defaultCurrency = "usd"

// Processor creates and reads hosted Stripe Checkout sessions.
type Processor struct {
	api      *client.API
	currency string
	logger   *slog.Logger
}

func NewProcessor(secretKey string, logger *slog.Logger) *Processor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Processor{
		api:      api,
		currency: defaultCurrency,
		logger:   application.ResolveLogger(logger),
	}
}

func (p *Processor) CreateCheckoutSession(
	ctx context.Context,
	input ports.CheckoutSessionInput,
) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(input.ProductName),
					},
					UnitAmount: stripe.Int64(input.UnitAmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
		CustomerEmail: stripe.String(input.HREmail),
	}
	params.Context = ctx
	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return ports.CheckoutSession{}, p.wrap("create checkout session", err)
	}
	p.logger.Info("checkout session created",
		"event", "stripe_checkout_session_created",
		"module", application.ModuleName,
		"layer", "adapter",
		"session_id", session.ID,
		"hr_email", input.HREmail,
	)
	return toPort(session), nil
}

func (p *Processor) GetCheckoutSession(ctx context.Context, sessionID string) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	session, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return ports.CheckoutSession{}, p.wrap("get checkout session", err)
	}
	return toPort(session), nil
}

func (p *Processor) wrap(op string, err error) error {
	message := err.Error()
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && strings.TrimSpace(stripeErr.Msg) != "" {
		message = stripeErr.Msg
	}
	p.logger.Error("stripe call failed",
		"event", "stripe_call_failed",
		"module", application.ModuleName,
		"layer", "adapter",
		"operation", op,
		"error", message,
	)
	return fmt.Errorf("%w: %s", domainerrors.ErrPaymentProcessor, message)
}

func toPort(session *stripe.CheckoutSession) ports.CheckoutSession {
	out := ports.CheckoutSession{
		SessionID:        session.ID,
		URL:              session.URL,
		Paid:             session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotalCents: session.AmountTotal,
		Metadata:         make(map[string]string, len(session.Metadata)),
	}
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}
	for key, value := range session.Metadata {
		out.Metadata[key] = value
	}
	return out
}
