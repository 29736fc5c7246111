package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrStripeNotConfigured = errors.New("stripe secret key is not configured")

// StripeBilling talks to the payment provider. One instance is built by the composition root.
type StripeBilling struct {
	api *client.API
}

func NewStripeBilling(secretKey string) *StripeBilling {
	if secretKey == "" {
		return &StripeBilling{}
	}
	return &StripeBilling{api: client.New(secretKey, nil)}
}

func (s *StripeBilling) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if s.api == nil {
		return "", ErrStripeNotConfigured
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := s.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe portal session: %w", err)
	}
	return session.URL, nil
}

func (s *StripeBilling) CancelSchedule(ctx context.Context, scheduleID string) error {
	if s.api == nil {
		return ErrStripeNotConfigured
	}

	params := &stripe.SubscriptionScheduleCancelParams{}
	params.Context = ctx

	if _, err := s.api.SubscriptionSchedules.Cancel(scheduleID, params); err != nil {
		return fmt.Errorf("stripe cancel schedule %s: %w", scheduleID, err)
	}
	return nil
}
