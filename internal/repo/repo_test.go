package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	ledgerrepo "github.com/spatocode/capperhub/internal/repo/ledger-repo"
	subscriptionrepo "github.com/spatocode/capperhub/internal/repo/subscription-repo"
	wagerrepo "github.com/spatocode/capperhub/internal/repo/wager-repo"
	walletrepo "github.com/spatocode/capperhub/internal/repo/wallet-repo"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.WagerRepo)
	assert.NotNil(t, repo.SubscriptionRepo)

	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &wagerrepo.Repository{}, repo.WagerRepo)
	assert.IsType(t, &subscriptionrepo.Repository{}, repo.SubscriptionRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
