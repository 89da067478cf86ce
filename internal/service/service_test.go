package service

import (
	"testing"

	"github.com/spatocode/capperhub/internal/config"
	"github.com/spatocode/capperhub/internal/events"
	"github.com/spatocode/capperhub/internal/pg"
	"github.com/spatocode/capperhub/internal/repo"
	"github.com/spatocode/capperhub/internal/service/subscriptionservice"
	"github.com/spatocode/capperhub/internal/service/wagerservice"
	"github.com/spatocode/capperhub/internal/service/walletservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletRepo := walletservice.NewMockWalletRepo(ctrl)
	mockLedgerRepo := walletservice.NewMockLedgerRepo(ctrl)
	mockWagerRepo := wagerservice.NewMockRepo(ctrl)
	mockSubscriptionRepo := subscriptionservice.NewMockRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		WalletRepo:       mockWalletRepo,
		LedgerRepo:       mockLedgerRepo,
		WagerRepo:        mockWagerRepo,
		SubscriptionRepo: mockSubscriptionRepo,
	}
	cfg := &config.Config{PlatformFeeRate: 0.15}

	services := New(cfg, repos, mockTxManager, events.NopEmitter{})

	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.WagerService)
	assert.NotNil(t, services.SubscriptionService)
}
