package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/fitposture/fitposture/internal/ctxkeys"
	"github.com/fitposture/fitposture/internal/model"
	"github.com/fitposture/fitposture/internal/render"
	"github.com/fitposture/fitposture/internal/service"
	"github.com/fitposture/fitposture/internal/service/payment"
)

type BillingHandler struct {
	provider            payment.Provider
	subscriptionService *service.SubscriptionService
}

func NewBillingHandler(provider payment.Provider, subscriptionService *service.SubscriptionService) *BillingHandler {
	return &BillingHandler{
		provider:            provider,
		subscriptionService: subscriptionService,
	}
}

// Plans lists the available subscription plans.
func (h *BillingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, model.Plans())
}

// Subscription returns the caller's current subscription.
func (h *BillingHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	sub := ctxkeys.Subscription(r.Context())
	if sub == nil {
		render.Error(w, http.StatusNotFound, "no subscription found")
		return
	}
	render.JSON(w, http.StatusOK, sub)
}

type checkoutRequest struct {
	PlanID   string `json:"plan_id"`
	Interval string `json:"interval"`
}

// CreateCheckout starts a provider checkout session for a paid plan and
// returns the URL the client should redirect to.
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	profile := ctxkeys.Profile(r.Context())

	var req checkoutRequest
	if err := render.Decode(r, &req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Interval == "" {
		req.Interval = "monthly"
	}
	if req.PlanID != model.SubscriptionPlanPremium && req.PlanID != model.SubscriptionPlanPro {
		render.Error(w, http.StatusBadRequest, "invalid plan")
		return
	}

	customerName := ""
	if profile != nil {
		customerName = profile.FullName
	}

	url, err := h.provider.CreateCheckoutURL(user.ID, req.PlanID, req.Interval, user.Email, customerName)
	if err != nil {
		slog.Error("failed to create checkout session", "error", err, "user_id", user.ID, "plan", req.PlanID)
		render.Error(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	slog.Info("checkout session created", "user_id", user.ID, "plan", req.PlanID, "provider", h.provider.Name())
	render.JSON(w, http.StatusOK, map[string]string{"checkout_url": url})
}

// CustomerPortal returns the provider's billing portal URL for the caller.
func (h *BillingHandler) CustomerPortal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	url, err := h.provider.CustomerPortalURL(user.ID)
	if err != nil {
		slog.Error("failed to create portal session", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "failed to create portal session")
		return
	}

	render.JSON(w, http.StatusOK, map[string]string{"portal_url": url})
}

// Webhook receives provider events. Signature verification happens inside
// the provider, so the raw body and headers are passed through untouched.
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read webhook payload", "error", err)
		render.Error(w, http.StatusBadRequest, "failed to read payload")
		return
	}

	if err := h.provider.HandleWebhook(payload, r.Header); err != nil {
		slog.Error("webhook processing failed", "error", err, "provider", h.provider.Name())
		render.Error(w, http.StatusBadRequest, "webhook processing failed")
		return
	}

	render.JSON(w, http.StatusOK, map[string]bool{"received": true})
}
