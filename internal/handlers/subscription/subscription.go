package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/dto"
	subscriptionservice "github.com/spatocode/capperhub/internal/service/subscriptionservice"
	walletservice "github.com/spatocode/capperhub/internal/service/walletservice"
	"github.com/spatocode/capperhub/pkg/auth"
	"github.com/spatocode/capperhub/pkg/utils"
)

type Service interface {
	Subscribe(ctx context.Context, subscriberID, issuerID int, planType string, periodDays int) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, issuerID int, planType string) (*domain.Subscription, error)
	ListSubscriptions(ctx context.Context, subscriberID int) ([]domain.Subscription, error)
	ListSubscribers(ctx context.Context, issuerID int) ([]domain.Subscription, error)
	UpdatePricing(ctx context.Context, accountID int, amount, percentageDiscount decimal.Decimal) (*domain.Pricing, error)
}

type SubscriptionHandler struct {
	subscriptionService Service
}

func New(subscriptionService Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// Subscribe godoc
//
//	@Summary		Subscribe to an issuer
//	@Description	Open a subscription to an issuer's picks. Premium plans charge the issuer's price up front.
//	@Tags			Subscription
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubscribeRequestDTO			true	"Subscription payload"
//	@Success		200		{object}	dto.SubscriptionResponseDTO		"Created subscription"
//	@Failure		400		{object}	utils.Response					"Invalid plan or self subscription"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		409		{object}	utils.Response					"Already subscribed"
//	@Failure		422		{object}	utils.Response					"Issuer has no pricing"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/subscriptions [post]
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.SubscribeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subscription, err := h.subscriptionService.Subscribe(r.Context(), accountID, req.Issuer, req.PlanType, req.PeriodDays)
	if err != nil {
		respondSubscriptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubscriptionDTO(subscription))
}

// Unsubscribe godoc
//
//	@Summary		Unsubscribe from an issuer
//	@Description	Deactivate the active subscription to an issuer. Paid periods are not refunded.
//	@Tags			Subscription
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UnsubscribeRequestDTO		true	"Unsubscribe payload"
//	@Success		200		{object}	dto.SubscriptionResponseDTO		"Deactivated subscription"
//	@Failure		400		{object}	utils.Response					"Not subscribed"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/subscriptions/unsubscribe [post]
func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.UnsubscribeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subscription, err := h.subscriptionService.Unsubscribe(r.Context(), accountID, req.Issuer, req.PlanType)
	if err != nil {
		respondSubscriptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubscriptionDTO(subscription))
}

// GetSubscriptions godoc
//
//	@Summary		List subscriptions
//	@Description	Get the authenticated account's active subscriptions, expiring lapsed ones first.
//	@Tags			Subscription
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubscriptionResponseDTO	"Subscriptions"
//	@Success		204	{object}	utils.Response				"No subscriptions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	subscriptions, err := h.subscriptionService.ListSubscriptions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}
	if len(subscriptions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Subscriptions not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubscriptionDTOs(subscriptions))
}

// GetSubscribers godoc
//
//	@Summary		List subscribers
//	@Description	Get the accounts actively subscribed to the authenticated issuer.
//	@Tags			Subscription
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubscriptionResponseDTO	"Subscribers"
//	@Success		204	{object}	utils.Response				"No subscribers"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/subscribers [get]
func (h *SubscriptionHandler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	subscriptions, err := h.subscriptionService.ListSubscribers(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscribers")
		return
	}
	if len(subscriptions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Subscribers not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubscriptionDTOs(subscriptions))
}

// UpdatePricing godoc
//
//	@Summary		Set premium pricing
//	@Description	Set the authenticated issuer's premium price and long-period discount. Price changes are locked for 60 days.
//	@Tags			Subscription
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PricingRequestDTO	true	"Pricing payload"
//	@Success		200		{object}	dto.PricingResponseDTO	"Saved pricing"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		409		{object}	utils.Response			"Pricing recently changed"
//	@Failure		422		{object}	utils.Response			"Invalid amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/pricing [post]
func (h *SubscriptionHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.PricingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pricing, err := h.subscriptionService.UpdatePricing(r.Context(), accountID, req.Amount, req.PercentageDiscount)
	if err != nil {
		respondSubscriptionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PricingResponseDTO{
		Amount:             pricing.Amount,
		PercentageDiscount: pricing.PercentageDiscount,
		LastUpdate:         pricing.LastUpdate,
	})
}

func respondSubscriptionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subscriptionservice.ErrSelfSubscription),
		errors.Is(err, subscriptionservice.ErrInvalidPlan),
		errors.Is(err, subscriptionservice.ErrNotSubscribed):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, subscriptionservice.ErrDuplicateSubscription),
		errors.Is(err, subscriptionservice.ErrPricingLocked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, subscriptionservice.ErrPricingNotSet),
		errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSubscriptionDTO(subscription *domain.Subscription) dto.SubscriptionResponseDTO {
	return dto.SubscriptionResponseDTO{
		ID:         subscription.ID,
		Issuer:     subscription.IssuerID,
		Subscriber: subscription.SubscriberID,
		PlanType:   subscription.PlanType,
		PeriodDays: subscription.PeriodDays,
		StartedAt:  subscription.StartedAt,
		ExpiresAt:  subscription.ExpiresAt,
		IsActive:   subscription.IsActive,
	}
}

func toSubscriptionDTOs(subscriptions []domain.Subscription) []dto.SubscriptionResponseDTO {
	response := make([]dto.SubscriptionResponseDTO, len(subscriptions))
	for i := range subscriptions {
		response[i] = toSubscriptionDTO(&subscriptions[i])
	}
	return response
}
