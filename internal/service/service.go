package service

import (
	"github.com/spatocode/capperhub/internal/config"
	"github.com/spatocode/capperhub/internal/events"
	subscriptionhandlers "github.com/spatocode/capperhub/internal/handlers/subscription"
	wagerhandlers "github.com/spatocode/capperhub/internal/handlers/wager"
	wallethandlers "github.com/spatocode/capperhub/internal/handlers/wallet"
	"github.com/spatocode/capperhub/internal/pg"
	"github.com/spatocode/capperhub/internal/repo"
	subscriptionservice "github.com/spatocode/capperhub/internal/service/subscriptionservice"
	wagerservice "github.com/spatocode/capperhub/internal/service/wagerservice"
	walletservice "github.com/spatocode/capperhub/internal/service/walletservice"
)

type Services struct {
	WalletService       wallethandlers.Service
	WagerService        wagerhandlers.Service
	SubscriptionService subscriptionhandlers.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, emitter events.Emitter) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.LedgerRepo, txManager)
	wagerService := wagerservice.New(repo.WagerRepo, walletService, txManager, emitter)
	subscriptionService := subscriptionservice.New(repo.SubscriptionRepo, walletService, txManager, emitter, cfg.PlatformFeeRate)

	return &Services{
		WalletService:       walletService,
		WagerService:        wagerService,
		SubscriptionService: subscriptionService,
	}
}
