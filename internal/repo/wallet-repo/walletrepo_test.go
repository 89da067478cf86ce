package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func walletRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "account_id", "available_balance", "held_balance", "currency"})
}

func TestRepository_GetWallet(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		accountID int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:      "Existing account returns wallet",
			accountID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(1).
					WillReturnRows(walletRows().AddRow(10, 1, decimal.NewFromInt(700), decimal.NewFromInt(300), "USD"))
			},
			result: &domain.Wallet{
				ID:               10,
				AccountID:        1,
				AvailableBalance: decimal.NewFromInt(700),
				HeldBalance:      decimal.NewFromInt(300),
				Currency:         "USD",
			},
		},
		{
			name:      "Unknown account returns nil",
			accountID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			accountID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWallet(context.Background(), tt.accountID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateWallet(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Wallet starts with zero balances",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets`)).
					WithArgs(1, "USD").
					WillReturnRows(walletRows().AddRow(10, 1, decimal.Zero, decimal.Zero, "USD"))
			},
		},
		{
			name: "Duplicate account fails",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets`)).
					WithArgs(1, "USD").
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.CreateWallet(context.Background(), 1, "USD")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, wallet.AvailableBalance.IsZero())
				assert.True(t, wallet.HeldBalance.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetWalletForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(1).
		WillReturnRows(walletRows().AddRow(10, 1, decimal.NewFromInt(1000), decimal.Zero, "USD"))

	wallet, err := repo.GetWalletForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, wallet.AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWalletPairForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY account_id ASC`)).
		WithArgs([]int{2, 1}).
		WillReturnRows(walletRows().
			AddRow(10, 1, decimal.NewFromInt(700), decimal.NewFromInt(300), "USD").
			AddRow(11, 2, decimal.NewFromInt(100), decimal.NewFromInt(300), "USD"))

	wallets, err := repo.GetWalletPairForUpdate(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.Len(t, wallets, 2)
	assert.Equal(t, 10, wallets[1].ID)
	assert.Equal(t, 11, wallets[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBalances(t *testing.T) {
	repo, mock := NewMock(t)

	wallet := &domain.Wallet{
		AccountID:        1,
		AvailableBalance: decimal.NewFromInt(700),
		HeldBalance:      decimal.NewFromInt(300),
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
		WithArgs(wallet.AvailableBalance, wallet.HeldBalance, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateBalances(context.Background(), wallet)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
