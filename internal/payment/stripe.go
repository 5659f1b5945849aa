package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeIntentCreator creates PaymentIntents against the Stripe API.
type StripeIntentCreator struct {
	api *client.API
}

func NewStripeIntentCreator(secretKey string) *StripeIntentCreator {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeIntentCreator{api: api}
}

func (c *StripeIntentCreator) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
