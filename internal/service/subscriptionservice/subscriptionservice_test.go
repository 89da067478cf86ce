package subscriptionservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/events"
	"github.com/spatocode/capperhub/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	service := New(repo, wallet, txManager, events.NopEmitter{}, 0.15)
	defer ctrl.Finish()
	return service, repo, wallet
}

func activeSub(id int, planType string) *domain.Subscription {
	return &domain.Subscription{
		ID:           id,
		IssuerID:     7,
		SubscriberID: 1,
		PlanType:     planType,
		IsActive:     true,
		StartedAt:    time.Now(),
	}
}

func TestSubscribe(t *testing.T) {
	service, repo, wallet := NewMock(t)
	tests := []struct {
		name          string
		planType      string
		periodDays    int
		prepareMock   func()
		checkSub      func(*domain.Subscription)
		expectedError error
	}{
		{
			name:       "Free subscription without charge",
			planType:   domain.PlanFree,
			periodDays: 0,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(nil, nil)
				repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
						assert.Nil(t, sub.ExpiresAt)
						assert.Nil(t, sub.PaymentReference)
						sub.ID = 15
						return sub, nil
					})
			},
			checkSub: func(sub *domain.Subscription) {
				assert.True(t, sub.IsActive)
				assert.Nil(t, sub.ExpiresAt)
			},
		},
		{
			name:       "Premium charge splits between issuer and platform",
			planType:   domain.PlanPremium,
			periodDays: 30,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(nil, nil)
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					AccountID: 7,
					Amount:    decimal.NewFromInt(100),
				}, nil)
				wallet.EXPECT().Debit(gomock.Any(), 1, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal, _, _ string) (*domain.LedgerEntry, error) {
						assert.Equal(t, "100", amount.String())
						return &domain.LedgerEntry{}, nil
					})
				wallet.EXPECT().Credit(gomock.Any(), 7, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal, _, _ string) (*domain.LedgerEntry, error) {
						assert.Equal(t, "85", amount.String())
						return &domain.LedgerEntry{}, nil
					})
				repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
						assert.NotNil(t, sub.ExpiresAt)
						assert.NotNil(t, sub.PaymentReference)
						return sub, nil
					})
			},
			checkSub: func(sub *domain.Subscription) {
				assert.Equal(t, domain.PlanPremium, sub.PlanType)
			},
		},
		{
			name:       "Long period applies the issuer discount",
			planType:   domain.PlanPremium,
			periodDays: 60,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(nil, nil)
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					AccountID:          7,
					Amount:             decimal.NewFromInt(100),
					PercentageDiscount: decimal.NewFromFloat(0.1),
				}, nil)
				wallet.EXPECT().Debit(gomock.Any(), 1, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal, _, _ string) (*domain.LedgerEntry, error) {
						assert.Equal(t, "90", amount.String())
						return &domain.LedgerEntry{}, nil
					})
				wallet.EXPECT().Credit(gomock.Any(), 7, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
						return sub, nil
					})
			},
			checkSub: func(sub *domain.Subscription) {},
		},
		{
			name:       "Premium supersedes an active free plan",
			planType:   domain.PlanPremium,
			periodDays: 30,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(activeSub(3, domain.PlanFree), nil)
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					Amount: decimal.NewFromInt(100),
				}, nil)
				wallet.EXPECT().Debit(gomock.Any(), 1, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				wallet.EXPECT().Credit(gomock.Any(), 7, gomock.Any(), domain.EntryTypeSubscriptionCharge, gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				repo.EXPECT().Deactivate(gomock.Any(), 3).Return(nil)
				repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
						return sub, nil
					})
			},
			checkSub: func(sub *domain.Subscription) {},
		},
		{
			name:       "Active premium blocks any new subscription",
			planType:   domain.PlanFree,
			periodDays: 0,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(activeSub(3, domain.PlanPremium), nil)
			},
			expectedError: ErrDuplicateSubscription,
		},
		{
			name:       "Duplicate free subscription",
			planType:   domain.PlanFree,
			periodDays: 0,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(activeSub(3, domain.PlanFree), nil)
			},
			expectedError: ErrDuplicateSubscription,
		},
		{
			name:       "Premium without issuer pricing",
			planType:   domain.PlanPremium,
			periodDays: 30,
			prepareMock: func() {
				repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
				repo.EXPECT().GetActive(gomock.Any(), 7, 1).Return(nil, nil)
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrPricingNotSet,
		},
		{
			name:          "Unknown plan type",
			planType:      "GOLD",
			prepareMock:   func() {},
			expectedError: ErrInvalidPlan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			sub, err := service.Subscribe(context.Background(), 1, 7, tt.planType, tt.periodDays)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.checkSub(sub)
			}
		})
	}
}

func TestSubscribeToSelf(t *testing.T) {
	service, _, _ := NewMock(t)
	_, err := service.Subscribe(context.Background(), 1, 1, domain.PlanFree, 0)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestUnsubscribe(t *testing.T) {
	service, repo, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful unsubscribe",
			prepareMock: func() {
				repo.EXPECT().GetActiveByPlan(gomock.Any(), 7, 1, domain.PlanPremium).Return(activeSub(3, domain.PlanPremium), nil)
				repo.EXPECT().Deactivate(gomock.Any(), 3).Return(nil)
			},
		},
		{
			name: "No active subscription of that plan",
			prepareMock: func() {
				repo.EXPECT().GetActiveByPlan(gomock.Any(), 7, 1, domain.PlanPremium).Return(nil, nil)
			},
			expectedError: ErrNotSubscribed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			sub, err := service.Unsubscribe(context.Background(), 1, 7, domain.PlanPremium)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.False(t, sub.IsActive)
			}
		})
	}
}

func TestListSubscriptions(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ExpirePremium(gomock.Any(), 1).Return(nil)
	repo.EXPECT().ListBySubscriber(gomock.Any(), 1).Return([]domain.Subscription{*activeSub(3, domain.PlanFree)}, nil)

	subs, err := service.ListSubscriptions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestListSubscribers(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ExpirePremium(gomock.Any(), 7).Return(nil)
	repo.EXPECT().ListByIssuer(gomock.Any(), 7).Return([]domain.Subscription{*activeSub(3, domain.PlanPremium)}, nil)

	subs, err := service.ListSubscribers(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestUpdatePricing(t *testing.T) {
	service, repo, _ := NewMock(t)
	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "First pricing is accepted",
			amount: decimal.NewFromInt(100),
			prepareMock: func() {
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(nil, nil)
				repo.EXPECT().SavePricing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Pricing) (*domain.Pricing, error) {
						return p, nil
					})
			},
		},
		{
			name:   "Recent price change is locked",
			amount: decimal.NewFromInt(150),
			prepareMock: func() {
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					AccountID:  7,
					Amount:     decimal.NewFromInt(100),
					LastUpdate: time.Now().AddDate(0, 0, -10),
				}, nil)
			},
			expectedError: ErrPricingLocked,
		},
		{
			name:   "Old price may change after the window",
			amount: decimal.NewFromInt(150),
			prepareMock: func() {
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					AccountID:  7,
					Amount:     decimal.NewFromInt(100),
					LastUpdate: time.Now().AddDate(0, 0, -61),
				}, nil)
				repo.EXPECT().SavePricing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Pricing) (*domain.Pricing, error) {
						return p, nil
					})
			},
		},
		{
			name:   "Unchanged amount skips the lock",
			amount: decimal.NewFromInt(100),
			prepareMock: func() {
				repo.EXPECT().GetPricing(gomock.Any(), 7).Return(&domain.Pricing{
					AccountID:  7,
					Amount:     decimal.NewFromInt(100),
					LastUpdate: time.Now().AddDate(0, 0, -10),
				}, nil)
				repo.EXPECT().SavePricing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Pricing) (*domain.Pricing, error) {
						return p, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			pricing, err := service.UpdatePricing(context.Background(), 7, tt.amount, decimal.NewFromFloat(0.1))
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, pricing.Amount.Equal(tt.amount))
			}
		})
	}
}
