package payment

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fitposture/fitposture/internal/config"
	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/service"
	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type StripeProvider struct {
	cfg                 *config.Config
	subscriptionService *service.SubscriptionService
}

func NewStripeProvider(cfg *config.Config, subscriptionService *service.SubscriptionService) *StripeProvider {
	// Set Stripe API key
	stripe.Key = cfg.StripeSecretKey

	slog.Info("stripe provider initialized", "app_env", cfg.AppEnv)

	return &StripeProvider{
		cfg:                 cfg,
		subscriptionService: subscriptionService,
	}
}

func (s *StripeProvider) Name() string {
	return model.ProviderStripe
}

func (s *StripeProvider) CreateCheckoutURL(userID, planID, interval, customerEmail, customerName string) (string, error) {
	sub, err := s.subscriptionService.Subscription(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}

	priceID := s.getStripePriceID(planID, interval)
	if priceID == "" {
		return "", fmt.Errorf("no price configured for plan: %s (%s)", planID, interval)
	}

	successURL := fmt.Sprintf("%s/billing?session_id={CHECKOUT_SESSION_ID}", s.cfg.AppURL)
	cancelURL := fmt.Sprintf("%s/billing", s.cfg.AppURL)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(customerEmail),
		Metadata: map[string]string{
			"user_id":         userID,
			"subscription_id": sub.ID,
			"plan_id":         planID,
		},
		AllowPromotionCodes: stripe.Bool(true),
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	slog.Info("stripe checkout created", "user_id", userID, "plan_id", planID, "session_id", sess.ID)
	return sess.URL, nil
}

func (s *StripeProvider) CustomerPortalURL(userID string) (string, error) {
	sub, err := s.subscriptionService.Subscription(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}

	if sub.ProviderCustomerID == nil || *sub.ProviderCustomerID == "" {
		return "", fmt.Errorf("no customer portal available for free subscriptions")
	}

	returnURL := fmt.Sprintf("%s/billing", s.cfg.AppURL)

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*sub.ProviderCustomerID),
		ReturnURL: stripe.String(returnURL),
	}

	portalSession, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer portal session: %w", err)
	}

	slog.Info("stripe customer portal session created", "user_id", userID)
	return portalSession.URL, nil
}

func (s *StripeProvider) HandleWebhook(payload []byte, headers http.Header) error {
	signature := headers.Get("Stripe-Signature")

	// Use ConstructEventWithOptions to ignore API version mismatch
	// Stripe's API versions are backwards compatible, so this is safe
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		s.cfg.StripeWebhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	slog.Info("stripe webhook received", "event_type", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutSessionCompleted(event.Data.Raw)
	case "customer.subscription.created":
		return s.handleSubscriptionCreated(event.Data.Raw)
	case "customer.subscription.updated":
		return s.handleSubscriptionUpdated(event.Data.Raw)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(event.Data.Raw)
	case "invoice.payment_succeeded":
		return s.handleInvoicePaymentSucceeded(event.Data.Raw)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(event.Data.Raw)
	default:
		slog.Warn("stripe webhook unknown event type", "event_type", event.Type)
		return nil
	}
}

func (s *StripeProvider) handleCheckoutSessionCompleted(data json.RawMessage) error {
	var checkoutSession struct {
		ID         string            `json:"id"`
		CustomerID string            `json:"customer"`
		Metadata   map[string]string `json:"metadata"`
	}

	err := json.Unmarshal(data, &checkoutSession)
	if err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	userID := checkoutSession.Metadata["user_id"]
	if userID == "" {
		slog.Warn("stripe checkout session has no user_id in metadata, skipping")
		return nil
	}

	sub, err := s.subscriptionService.Subscription(userID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}

	// Store customer ID for future use
	sub.Provider = model.ProviderStripe
	sub.ProviderCustomerID = &checkoutSession.CustomerID

	err = s.subscriptionService.UpdateSubscription(sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	slog.Info("stripe checkout completed", "user_id", userID, "customer_id", checkoutSession.CustomerID)
	return nil
}

func (s *StripeProvider) handleSubscriptionCreated(data json.RawMessage) error {
	var subscription struct {
		ID               string `json:"id"`
		CustomerID       string `json:"customer"`
		Status           string `json:"status"`
		CurrentPeriodEnd int64  `json:"current_period_end"`
		Items            struct {
			Data []struct {
				Price struct {
					ID         string `json:"id"`
					UnitAmount int64  `json:"unit_amount"`
					Currency   string `json:"currency"`
					Recurring  struct {
						Interval string `json:"interval"`
					} `json:"recurring"`
				} `json:"price"`
			} `json:"data"`
		} `json:"items"`
		Metadata map[string]string `json:"metadata"`
	}

	err := json.Unmarshal(data, &subscription)
	if err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	// Find user by customer ID
	sub, err := s.subscriptionService.ByProviderCustomerID(subscription.CustomerID)
	if err != nil {
		slog.Warn("stripe subscription has unknown customer, skipping", "customer_id", subscription.CustomerID)
		return nil
	}

	if len(subscription.Items.Data) == 0 {
		return fmt.Errorf("subscription has no items")
	}

	priceID := subscription.Items.Data[0].Price.ID
	planID := s.getLocalPlanID(priceID)
	if planID != "" {
		sub.PlanID = planID
	}

	sub.Provider = model.ProviderStripe
	sub.ProviderSubscriptionID = &subscription.ID
	sub.Status = s.mapStripeStatus(subscription.Status)
	sub.PaymentStatus = model.PaymentStatusPaid

	amount := int(subscription.Items.Data[0].Price.UnitAmount)
	sub.Amount = &amount
	sub.Currency = subscription.Items.Data[0].Price.Currency

	interval := s.mapStripeInterval(subscription.Items.Data[0].Price.Recurring.Interval)
	sub.Interval = &interval

	periodEnd := time.Unix(subscription.CurrentPeriodEnd, 0)
	sub.CurrentPeriodEnd = &periodEnd

	err = s.subscriptionService.UpdateSubscription(sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	slog.Info("stripe subscription created", "user_id", sub.UserID, "plan_id", planID, "stripe_sub_id", subscription.ID)
	return nil
}

func (s *StripeProvider) handleSubscriptionUpdated(data json.RawMessage) error {
	var subscription struct {
		ID                string `json:"id"`
		Status            string `json:"status"`
		CurrentPeriodEnd  int64  `json:"current_period_end"`
		CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
		Items             struct {
			Data []struct {
				Price struct {
					ID         string `json:"id"`
					UnitAmount int64  `json:"unit_amount"`
					Currency   string `json:"currency"`
					Recurring  struct {
						Interval string `json:"interval"`
					} `json:"recurring"`
				} `json:"price"`
			} `json:"data"`
		} `json:"items"`
	}

	err := json.Unmarshal(data, &subscription)
	if err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	sub, err := s.subscriptionService.ByProviderSubscriptionID(subscription.ID)
	if err != nil {
		slog.Warn("stripe subscription not found, skipping update", "stripe_sub_id", subscription.ID)
		return nil
	}

	if len(subscription.Items.Data) > 0 {
		priceID := subscription.Items.Data[0].Price.ID
		planID := s.getLocalPlanID(priceID)
		if planID != "" {
			sub.PlanID = planID
		}

		amount := int(subscription.Items.Data[0].Price.UnitAmount)
		sub.Amount = &amount
		sub.Currency = subscription.Items.Data[0].Price.Currency

		interval := s.mapStripeInterval(subscription.Items.Data[0].Price.Recurring.Interval)
		sub.Interval = &interval
	}

	sub.Status = s.mapStripeStatus(subscription.Status)

	// If subscription is set to cancel at period end, mark as cancelled
	if subscription.CancelAtPeriodEnd {
		sub.Status = model.SubscriptionStatusCancelled
	}

	periodEnd := time.Unix(subscription.CurrentPeriodEnd, 0)
	sub.CurrentPeriodEnd = &periodEnd

	err = s.subscriptionService.UpdateSubscription(sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	slog.Info("stripe subscription updated", "user_id", sub.UserID, "stripe_sub_id", subscription.ID, "status", sub.Status)
	return nil
}

func (s *StripeProvider) handleSubscriptionDeleted(data json.RawMessage) error {
	var subscription struct {
		ID string `json:"id"`
	}

	err := json.Unmarshal(data, &subscription)
	if err != nil {
		return fmt.Errorf("failed to parse subscription: %w", err)
	}

	sub, err := s.subscriptionService.ByProviderSubscriptionID(subscription.ID)
	if err != nil {
		slog.Warn("stripe subscription not found, ignoring deletion", "stripe_sub_id", subscription.ID)
		return nil
	}

	if sub.PlanID == model.SubscriptionPlanFree {
		slog.Warn("stripe subscription already free, ignoring deletion")
		return nil
	}

	err = s.subscriptionService.DowngradeToFree(sub)
	if err != nil {
		return fmt.Errorf("failed to downgrade subscription: %w", err)
	}

	slog.Info("stripe subscription deleted, downgraded to free", "user_id", sub.UserID, "stripe_sub_id", subscription.ID)
	return nil
}

func (s *StripeProvider) handleInvoicePaymentSucceeded(data json.RawMessage) error {
	var invoice struct {
		SubscriptionID string `json:"subscription"`
	}

	err := json.Unmarshal(data, &invoice)
	if err != nil {
		return fmt.Errorf("failed to parse invoice: %w", err)
	}

	if invoice.SubscriptionID == "" {
		// One-time payment, not subscription-related
		return nil
	}

	sub, err := s.subscriptionService.ByProviderSubscriptionID(invoice.SubscriptionID)
	if err != nil {
		slog.Warn("stripe invoice has unknown subscription, skipping", "subscription_id", invoice.SubscriptionID)
		return nil
	}

	// Ensure subscription is active and paid after successful payment
	if sub.Status != model.SubscriptionStatusActive || sub.PaymentStatus != model.PaymentStatusPaid {
		sub.Status = model.SubscriptionStatusActive
		sub.PaymentStatus = model.PaymentStatusPaid
		err = s.subscriptionService.UpdateSubscription(sub)
		if err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
	}

	slog.Info("stripe invoice payment succeeded", "user_id", sub.UserID, "subscription_id", invoice.SubscriptionID)
	return nil
}

func (s *StripeProvider) handleInvoicePaymentFailed(data json.RawMessage) error {
	var invoice struct {
		SubscriptionID string `json:"subscription"`
	}

	err := json.Unmarshal(data, &invoice)
	if err != nil {
		return fmt.Errorf("failed to parse invoice: %w", err)
	}

	if invoice.SubscriptionID == "" {
		return nil
	}

	sub, err := s.subscriptionService.ByProviderSubscriptionID(invoice.SubscriptionID)
	if err != nil {
		slog.Warn("stripe invoice has unknown subscription, skipping", "subscription_id", invoice.SubscriptionID)
		return nil
	}

	sub.PaymentStatus = model.PaymentStatusFailed
	err = s.subscriptionService.UpdateSubscription(sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	slog.Warn("stripe invoice payment failed", "user_id", sub.UserID, "subscription_id", invoice.SubscriptionID)
	// Note: Don't automatically cancel - Stripe will retry and eventually send subscription.deleted
	return nil
}

func (s *StripeProvider) getStripePriceID(planID, interval string) string {
	if interval != model.SubscriptionIntervalMonthly {
		return ""
	}

	switch planID {
	case model.SubscriptionPlanPremium:
		return s.cfg.StripePriceIDPremiumMonthly
	case model.SubscriptionPlanPro:
		return s.cfg.StripePriceIDProMonthly
	default:
		return ""
	}
}

func (s *StripeProvider) getLocalPlanID(priceID string) string {
	switch priceID {
	case s.cfg.StripePriceIDPremiumMonthly:
		return model.SubscriptionPlanPremium
	case s.cfg.StripePriceIDProMonthly:
		return model.SubscriptionPlanPro
	default:
		return ""
	}
}

func (s *StripeProvider) mapStripeStatus(status string) string {
	switch status {
	case "active", "trialing":
		return model.SubscriptionStatusActive
	case "canceled", "incomplete_expired", "unpaid":
		return model.SubscriptionStatusCancelled
	default:
		return status
	}
}

func (s *StripeProvider) mapStripeInterval(interval string) string {
	switch interval {
	case "month":
		return model.SubscriptionIntervalMonthly
	case "year":
		return model.SubscriptionIntervalYearly
	default:
		return interval
	}
}
