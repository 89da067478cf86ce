package repo

import (
	"github.com/spatocode/capperhub/internal/pg"
	ledgerrepo "github.com/spatocode/capperhub/internal/repo/ledger-repo"
	subscriptionrepo "github.com/spatocode/capperhub/internal/repo/subscription-repo"
	wagerrepo "github.com/spatocode/capperhub/internal/repo/wager-repo"
	walletrepo "github.com/spatocode/capperhub/internal/repo/wallet-repo"
	"github.com/spatocode/capperhub/internal/service/subscriptionservice"
	"github.com/spatocode/capperhub/internal/service/wagerservice"
	"github.com/spatocode/capperhub/internal/service/walletservice"
)

type Repositories struct {
	WalletRepo       walletservice.WalletRepo
	LedgerRepo       walletservice.LedgerRepo
	WagerRepo        wagerservice.Repo
	SubscriptionRepo subscriptionservice.Repo
}

func New(conn pg.Database) *Repositories {
	walletRepo := walletrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	wagerRepo := wagerrepo.New(conn)
	subscriptionRepo := subscriptionrepo.New(conn)

	return &Repositories{
		WalletRepo:       walletRepo,
		LedgerRepo:       ledgerRepo,
		WagerRepo:        wagerRepo,
		SubscriptionRepo: subscriptionRepo,
	}
}
