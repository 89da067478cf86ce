package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/spatocode/capperhub/docs"
	subscriptionhandlers "github.com/spatocode/capperhub/internal/handlers/subscription"
	wagerhandlers "github.com/spatocode/capperhub/internal/handlers/wager"
	wallethandlers "github.com/spatocode/capperhub/internal/handlers/wallet"
	"github.com/spatocode/capperhub/internal/service"
	"github.com/spatocode/capperhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		WalletService:       wallethandlers.NewMockService(ctrl),
		WagerService:        wagerhandlers.NewMockService(ctrl),
		SubscriptionService: subscriptionhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockWagerHandler := NewMockWagerHandler(ctrl)
	mockSubscriptionHandler := NewMockSubscriptionHandler(ctrl)

	mockWalletHandler.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetLedger(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().PaymentWebhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().PlaceWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().GetWagers(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().MatchWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().SettleWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().VoidWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().GetInvitations(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().AcceptInvitation(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubscriptionHandler.EXPECT().Subscribe(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubscriptionHandler.EXPECT().GetSubscriptions(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubscriptionHandler.EXPECT().Unsubscribe(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubscriptionHandler.EXPECT().GetSubscribers(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubscriptionHandler.EXPECT().UpdatePricing(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:       mockWalletHandler,
		WagerHandler:        mockWagerHandler,
		SubscriptionHandler: mockSubscriptionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/webhook/payment", http.StatusOK},
		{"POST", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/wagers", http.StatusUnauthorized},
		{"GET", "/api/user/wagers", http.StatusUnauthorized},
		{"POST", "/api/user/wagers/xK4mQp2r/match", http.StatusUnauthorized},
		{"POST", "/api/user/wagers/xK4mQp2r/settle", http.StatusUnauthorized},
		{"POST", "/api/user/wagers/xK4mQp2r/void", http.StatusUnauthorized},
		{"GET", "/api/user/invitations", http.StatusUnauthorized},
		{"POST", "/api/user/invitations/5/accept", http.StatusUnauthorized},
		{"POST", "/api/user/subscriptions", http.StatusUnauthorized},
		{"GET", "/api/user/subscriptions", http.StatusUnauthorized},
		{"POST", "/api/user/subscriptions/unsubscribe", http.StatusUnauthorized},
		{"GET", "/api/user/subscribers", http.StatusUnauthorized},
		{"POST", "/api/user/pricing", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestOperatorRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWagerHandler := NewMockWagerHandler(ctrl)
	mockWagerHandler.EXPECT().MatchWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().SettleWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockWagerHandler.EXPECT().VoidWager(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:       NewMockWalletHandler(ctrl),
		WagerHandler:        mockWagerHandler,
		SubscriptionHandler: NewMockSubscriptionHandler(ctrl),
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	expiration := time.Now().Add(time.Hour)
	userToken, err := jwtService.GenerateJWT(1, expiration)
	assert.NoError(t, err)
	operatorToken, err := jwtService.GenerateOperatorJWT(99, expiration)
	assert.NoError(t, err)

	tests := []struct {
		name   string
		url    string
		token  string
		status int
	}{
		{"user token cannot settle", "/api/user/wagers/xK4mQp2r/settle", userToken, http.StatusForbidden},
		{"user token cannot void", "/api/user/wagers/xK4mQp2r/void", userToken, http.StatusForbidden},
		{"operator token settles", "/api/user/wagers/xK4mQp2r/settle", operatorToken, http.StatusOK},
		{"operator token voids", "/api/user/wagers/xK4mQp2r/void", operatorToken, http.StatusOK},
		{"user token still matches", "/api/user/wagers/xK4mQp2r/match", userToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
