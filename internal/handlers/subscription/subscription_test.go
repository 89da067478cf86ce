package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/dto"
	subscriptionservice "github.com/spatocode/capperhub/internal/service/subscriptionservice"
	walletservice "github.com/spatocode/capperhub/internal/service/walletservice"
	"github.com/spatocode/capperhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SubscriptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func sampleSubscription() *domain.Subscription {
	expiresAt := time.Now().AddDate(0, 0, 30)
	return &domain.Subscription{
		ID:           15,
		IssuerID:     7,
		SubscriberID: 1,
		PlanType:     domain.PlanPremium,
		PeriodDays:   30,
		StartedAt:    time.Now(),
		ExpiresAt:    &expiresAt,
		IsActive:     true,
	}
}

func TestSubscribeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful premium subscription",
			body: `{"issuer":7,"plan_type":"PREMIUM","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM", 30).
					Return(sampleSubscription(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"issuer":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Self subscription",
			body: `{"issuer":1,"plan_type":"FREE","period_days":0}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 1, "FREE", 0).
					Return(nil, subscriptionservice.ErrSelfSubscription)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "can't subscribe to yourself",
		},
		{
			name: "Unknown plan",
			body: `{"issuer":7,"plan_type":"GOLD","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "GOLD", 30).
					Return(nil, subscriptionservice.ErrInvalidPlan)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "unknown plan type",
		},
		{
			name: "Already subscribed",
			body: `{"issuer":7,"plan_type":"PREMIUM","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM", 30).
					Return(nil, subscriptionservice.ErrDuplicateSubscription)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already subscribed",
		},
		{
			name: "Issuer has no pricing",
			body: `{"issuer":7,"plan_type":"PREMIUM","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM", 30).
					Return(nil, subscriptionservice.ErrPricingNotSet)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "issuer has no pricing",
		},
		{
			name: "Insufficient funds",
			body: `{"issuer":7,"plan_type":"PREMIUM","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM", 30).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Internal server error",
			body: `{"issuer":7,"plan_type":"PREMIUM","period_days":30}`,
			prepareMock: func() {
				service.EXPECT().
					Subscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM", 30).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.AccountIDKey, 1))
			w := httptest.NewRecorder()
			handler.Subscribe(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.SubscriptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 15, body.ID)
				assert.Equal(t, 7, body.Issuer)
				assert.Equal(t, 1, body.Subscriber)
				assert.Equal(t, domain.PlanPremium, body.PlanType)
				assert.True(t, body.IsActive)
			}
		})
	}
}

func TestUnsubscribeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful unsubscribe",
			body: `{"issuer":7,"plan_type":"PREMIUM"}`,
			prepareMock: func() {
				deactivated := sampleSubscription()
				deactivated.IsActive = false
				service.EXPECT().
					Unsubscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM").
					Return(deactivated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not subscribed",
			body: `{"issuer":7,"plan_type":"PREMIUM"}`,
			prepareMock: func() {
				service.EXPECT().
					Unsubscribe(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, 7, "PREMIUM").
					Return(nil, subscriptionservice.ErrNotSubscribed)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "not subscribed",
		},
		{
			name:          "Invalid request body",
			body:          `{"issuer":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/subscriptions/unsubscribe", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.AccountIDKey, 1))
			w := httptest.NewRecorder()
			handler.Unsubscribe(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.SubscriptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.False(t, body.IsActive)
			}
		})
	}
}

func TestGetSubscriptionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListSubscriptions(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return([]domain.Subscription{*sampleSubscription()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No subscriptions",
			prepareMock: func() {
				service.EXPECT().
					ListSubscriptions(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return([]domain.Subscription{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					ListSubscriptions(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.AccountIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetSubscriptions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.SubscriptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedLen, len(body))
			}
		})
	}
}

func TestGetSubscribersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListSubscribers(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return([]domain.Subscription{*sampleSubscription()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No subscribers",
			prepareMock: func() {
				service.EXPECT().
					ListSubscribers(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return([]domain.Subscription{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					ListSubscribers(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.AccountIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetSubscribers(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdatePricingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"amount":"100","percentage_discount":"0.1"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePricing(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, decimal.RequireFromString("100"), decimal.RequireFromString("0.1")).
					Return(&domain.Pricing{
						AccountID:          1,
						Amount:             decimal.RequireFromString("100"),
						PercentageDiscount: decimal.RequireFromString("0.1"),
						LastUpdate:         time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pricing recently changed",
			body: `{"amount":"120","percentage_discount":"0.1"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePricing(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, decimal.RequireFromString("120"), decimal.RequireFromString("0.1")).
					Return(nil, subscriptionservice.ErrPricingLocked)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "pricing can only be updated once in 60 days",
		},
		{
			name: "Invalid amount",
			body: `{"amount":"-1","percentage_discount":"0.1"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePricing(context.WithValue(context.Background(), auth.AccountIDKey, 1), 1, decimal.RequireFromString("-1"), decimal.RequireFromString("0.1")).
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be positive",
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/pricing", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.AccountIDKey, 1))
			w := httptest.NewRecorder()
			handler.UpdatePricing(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PricingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, decimal.RequireFromString("100").Equal(body.Amount))
				assert.True(t, decimal.RequireFromString("0.1").Equal(body.PercentageDiscount))
			}
		})
	}
}
