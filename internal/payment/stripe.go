package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v84"
)

// Confirmation is the subset of the processor's payment-intent object
// echoed back to the donor.
type Confirmation struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CardDeclinedError carries the processor's decline message. A decline
// means no donation row gets written.
type CardDeclinedError struct {
	Message string
}

func (e *CardDeclinedError) Error() string {
	return e.Message
}

// Gateway charges a payment method synchronously. The call blocks until
// the processor accepts or declines; there is no retry.
type Gateway interface {
	Charge(ctx context.Context, amount float64, paymentMethodID string) (*Confirmation, error)
}

// StripeGateway creates confirmed Stripe payment intents.
type StripeGateway struct {
	client *stripe.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{client: stripe.NewClient(secretKey)}
}

func (g *StripeGateway) Charge(ctx context.Context, amount float64, paymentMethodID string) (*Confirmation, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:        stripe.Int64(minorUnits(amount)),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
	}

	intent, err := g.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, &CardDeclinedError{Message: stripeErr.Msg}
		}
		return nil, err
	}

	return &Confirmation{
		ID:       intent.ID,
		Amount:   intent.Amount,
		Currency: string(intent.Currency),
		Status:   string(intent.Status),
	}, nil
}

// minorUnits converts a decimal amount to the processor's smallest
// currency denomination, truncating fractional cents.
func minorUnits(amount float64) int64 {
	return int64(amount * 100)
}
