package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetWallet(ctx context.Context, accountID int) (*domain.Wallet, error) {
	query := `
        SELECT id, account_id, available_balance, held_balance, currency
        FROM wallets
        WHERE account_id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.AccountID, &wallet.AvailableBalance, &wallet.HeldBalance, &wallet.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CreateWallet(ctx context.Context, accountID int, currency string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (account_id, available_balance, held_balance, currency)
        VALUES ($1, 0, 0, $2)
        RETURNING id, account_id, available_balance, held_balance, currency
    `
	row := r.db.QueryRow(ctx, query, accountID, currency)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.AccountID, &wallet.AvailableBalance, &wallet.HeldBalance, &wallet.Currency)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetWalletForUpdate locks the wallet row until the surrounding transaction
// ends. Every balance mutation goes through this lock, which is what rules
// out the stale-read double-spend.
func (r *Repository) GetWalletForUpdate(ctx context.Context, accountID int) (*domain.Wallet, error) {
	query := `
        SELECT id, account_id, available_balance, held_balance, currency
        FROM wallets
        WHERE account_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.AccountID, &wallet.AvailableBalance, &wallet.HeldBalance, &wallet.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetWalletPairForUpdate locks two wallet rows in ascending account id order
// so that settlements running in opposite directions cannot deadlock.
func (r *Repository) GetWalletPairForUpdate(ctx context.Context, accountA, accountB int) (map[int]*domain.Wallet, error) {
	query := `
        SELECT id, account_id, available_balance, held_balance, currency
        FROM wallets
        WHERE account_id = ANY($1)
        ORDER BY account_id ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, []int{accountA, accountB})
	if err != nil {
		zap.L().Error("failed to lock wallet pair", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	wallets := make(map[int]*domain.Wallet)
	for rows.Next() {
		var wallet domain.Wallet
		err := rows.Scan(&wallet.ID, &wallet.AccountID, &wallet.AvailableBalance, &wallet.HeldBalance, &wallet.Currency)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets[wallet.AccountID] = &wallet
	}
	return wallets, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, wallet *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET available_balance = $1, held_balance = $2
        WHERE account_id = $3
    `
	_, err := r.db.Exec(ctx, query, wallet.AvailableBalance, wallet.HeldBalance, wallet.AccountID)
	if err != nil {
		zap.L().Error("failed to update wallet balances", zap.Error(err))
		return err
	}
	return nil
}
