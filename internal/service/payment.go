package service

import (
	"context"
	"fmt"
	"math"

	"scholarhub/internal/errdefs"
)

const paymentCurrency = "usd"

// IntentCreator is the narrow surface of the payment processor: exchange an
// amount in minor units for an opaque client-side confirmation token.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentService struct {
	intents IntentCreator
}

func NewPaymentService(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

// CreatePaymentIntent converts a fee in major currency units to cents and
// asks the processor for an intent. The minor-unit value is checked before
// rounding, so a fee of 0.005 (half a cent) is rejected rather than rounded
// up to one cent, and no processor call is made.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, fee *float64) (string, error) {
	if fee == nil {
		return "", fmt.Errorf("%w: registration_fee is required", errdefs.ErrValidation)
	}
	minor := *fee * 100
	if minor < 1 {
		return "", fmt.Errorf("%w: registration_fee must be at least one cent", errdefs.ErrValidation)
	}
	cents := int64(math.Round(minor))
	clientSecret, err := s.intents.CreateIntent(ctx, cents, paymentCurrency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errdefs.ErrUpstream, err)
	}
	return clientSecret, nil
}
