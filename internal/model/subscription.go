package model

import (
	"fmt"
	"time"
)

type Subscription struct {
	ID                     string     `db:"id" json:"id"`
	UserID                 string     `db:"user_id" json:"user_id"`
	PlanID                 string     `db:"plan_id" json:"plan_id"`
	Status                 string     `db:"status" json:"status"`
	PaymentStatus          string     `db:"payment_status" json:"payment_status"`
	Provider               string     `db:"provider" json:"-"`
	ProviderCustomerID     *string    `db:"provider_customer_id" json:"-"`
	ProviderSubscriptionID *string    `db:"provider_subscription_id" json:"-"`
	CurrentPeriodEnd       *time.Time `db:"current_period_end" json:"current_period_end"`
	Amount                 *int       `db:"amount" json:"amount"`
	Currency               string     `db:"currency" json:"currency"`
	Interval               *string    `db:"interval" json:"interval"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

const (
	ProviderStripe = "stripe"
	ProviderPolar  = "polar"
)

const (
	SubscriptionPlanFree    = "free"
	SubscriptionPlanPremium = "premium"
	SubscriptionPlanPro     = "pro"
)

const (
	SubscriptionIntervalMonthly = "monthly"
	SubscriptionIntervalYearly  = "yearly"
)

func ValidPlan(planID string) bool {
	return planID == SubscriptionPlanFree ||
		planID == SubscriptionPlanPremium ||
		planID == SubscriptionPlanPro
}

func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

func (s *Subscription) IsPaid() bool {
	return s.PlanID != SubscriptionPlanFree && s.IsActive()
}

func (s *Subscription) FormatPrice() string {
	if s.Amount == nil || *s.Amount == 0 {
		return ""
	}

	currencySymbols := map[string]string{
		"usd": "$",
		"eur": "€",
		"gbp": "£",
	}

	amount := float64(*s.Amount) / 100.0
	symbol := currencySymbols[s.Currency]
	if symbol == "" {
		symbol = "$"
	}

	interval := "month"
	if s.Interval != nil && *s.Interval == SubscriptionIntervalYearly {
		interval = "year"
	}

	return fmt.Sprintf("%s%.2f/%s", symbol, amount, interval)
}

// PhotoLimit returns the maximum number of progress photos for this plan.
// Returns -1 for unlimited.
func (s *Subscription) PhotoLimit() int {
	if !s.IsActive() {
		return 5 // Free tier default
	}

	switch s.PlanID {
	case SubscriptionPlanFree:
		return 5
	case SubscriptionPlanPremium:
		return 50
	case SubscriptionPlanPro:
		return -1 // unlimited
	default:
		return 5
	}
}

// Plan describes a purchasable tier shown on the pricing page.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int      `json:"price_cents"`
	Interval   string   `json:"interval"`
	Features   []string `json:"features"`
}

// Plans lists the available tiers in display order.
func Plans() []Plan {
	return []Plan{
		{
			ID:         SubscriptionPlanFree,
			Name:       "Basic",
			PriceCents: 0,
			Interval:   SubscriptionIntervalMonthly,
			Features: []string{
				"Basic posture assessment",
				"Exercise recommendations",
				"Progress tracking (5 photos)",
			},
		},
		{
			ID:         SubscriptionPlanPremium,
			Name:       "Premium",
			PriceCents: 999,
			Interval:   SubscriptionIntervalMonthly,
			Features: []string{
				"Advanced posture assessment",
				"Personalized exercise plans",
				"Progress tracking (50 photos)",
				"Priority email support",
			},
		},
		{
			ID:         SubscriptionPlanPro,
			Name:       "Professional",
			PriceCents: 1999,
			Interval:   SubscriptionIntervalMonthly,
			Features: []string{
				"Everything in Premium",
				"Unlimited progress photos",
				"Video consultations",
				"Custom exercise programs",
			},
		},
	}
}
