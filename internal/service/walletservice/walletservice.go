package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, accountID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, accountID int, currency string) (*domain.Wallet, error)
	GetWalletForUpdate(ctx context.Context, accountID int) (*domain.Wallet, error)
	GetWalletPairForUpdate(ctx context.Context, accountA, accountB int) (map[int]*domain.Wallet, error)
	UpdateBalances(ctx context.Context, wallet *domain.Wallet) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error)
	MarkSucceeded(ctx context.Context, entryID int) error
	MarkFailed(ctx context.Context, entryID int) error
	ListByAccountID(ctx context.Context, accountID, limit, offset int) ([]domain.LedgerEntry, error)
}

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrWalletExists      = errors.New("wallet already exists")
	ErrReferenceUsed     = errors.New("reference already used")
	// ErrInvalidState signals a broken invariant, not a caller mistake.
	ErrInvalidState = errors.New("wallet state invariant violated")
)

type Service struct {
	walletRepo WalletRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

func (s *Service) CreateWallet(ctx context.Context, accountID int, currency string) (*domain.Wallet, error) {
	existing, err := s.walletRepo.GetWallet(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWalletExists
	}
	wallet, err := s.walletRepo.CreateWallet(ctx, accountID, currency)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, accountID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) ListLedgerEntries(ctx context.Context, accountID, limit, offset int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Credit increases the available balance. A reference that already succeeded
// makes the call a no-op returning the stored entry, so retried payment
// callbacks never double-credit.
func (s *Service) Credit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		replayed, wallet, err := s.lockForEntry(ctx, accountID, reference)
		if err != nil {
			return err
		}
		if replayed != nil {
			entry = replayed
			return nil
		}

		wallet.AvailableBalance = wallet.AvailableBalance.Add(amount)
		entry, err = s.writeEntry(ctx, wallet, &domain.LedgerEntry{
			AccountID:        accountID,
			Type:             entryType,
			Amount:           amount,
			ResultingBalance: wallet.AvailableBalance,
			Reference:        reference,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Debit decreases the available balance, failing when it would go negative.
func (s *Service) Debit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		replayed, wallet, err := s.lockForEntry(ctx, accountID, reference)
		if err != nil {
			return err
		}
		if replayed != nil {
			entry = replayed
			return nil
		}

		if wallet.AvailableBalance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		wallet.AvailableBalance = wallet.AvailableBalance.Sub(amount)
		entry, err = s.writeEntry(ctx, wallet, &domain.LedgerEntry{
			AccountID:        accountID,
			Type:             entryType,
			Amount:           amount,
			ResultingBalance: wallet.AvailableBalance,
			Reference:        reference,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Hold moves amount from the available balance into escrow.
func (s *Service) Hold(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		replayed, wallet, err := s.lockForEntry(ctx, accountID, reference)
		if err != nil {
			return err
		}
		if replayed != nil {
			entry = replayed
			return nil
		}

		if wallet.AvailableBalance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		wallet.AvailableBalance = wallet.AvailableBalance.Sub(amount)
		wallet.HeldBalance = wallet.HeldBalance.Add(amount)
		entry, err = s.writeEntry(ctx, wallet, &domain.LedgerEntry{
			AccountID:        accountID,
			Type:             domain.EntryTypeWagerHold,
			Amount:           amount,
			ResultingBalance: wallet.AvailableBalance,
			Reference:        reference,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Release moves amount back out of escrow. A held balance smaller than the
// release amount means an upstream bug, never user input.
func (s *Service) Release(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		replayed, wallet, err := s.lockForEntry(ctx, accountID, reference)
		if err != nil {
			return err
		}
		if replayed != nil {
			entry = replayed
			return nil
		}

		if wallet.HeldBalance.LessThan(amount) {
			zap.L().Error("release exceeds held balance",
				zap.Int("accountID", accountID),
				zap.String("held", wallet.HeldBalance.String()),
				zap.String("amount", amount.String()),
				zap.String("reference", reference))
			return ErrInvalidState
		}

		wallet.HeldBalance = wallet.HeldBalance.Sub(amount)
		wallet.AvailableBalance = wallet.AvailableBalance.Add(amount)
		entry, err = s.writeEntry(ctx, wallet, &domain.LedgerEntry{
			AccountID:        accountID,
			Type:             domain.EntryTypeWagerRelease,
			Amount:           amount,
			ResultingBalance: wallet.AvailableBalance,
			Reference:        reference,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// TransferHeld moves amount out of one account's escrow into another
// account's available balance. Both wallets are locked in ascending account
// id order, and both ledger legs commit in the same unit.
func (s *Service) TransferHeld(ctx context.Context, fromAccountID, toAccountID int, amount decimal.Decimal, reference string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.ledgerRepo.FindByReference(ctx, reference+":out")
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.Status == domain.EntryStatusSucceeded {
				return nil
			}
			return ErrReferenceUsed
		}

		wallets, err := s.walletRepo.GetWalletPairForUpdate(ctx, fromAccountID, toAccountID)
		if err != nil {
			return err
		}
		from, to := wallets[fromAccountID], wallets[toAccountID]
		if from == nil || to == nil {
			return ErrWalletNotFound
		}

		if from.HeldBalance.LessThan(amount) {
			zap.L().Error("transfer exceeds held balance",
				zap.Int("fromAccountID", fromAccountID),
				zap.Int("toAccountID", toAccountID),
				zap.String("held", from.HeldBalance.String()),
				zap.String("amount", amount.String()),
				zap.String("reference", reference))
			return ErrInvalidState
		}

		from.HeldBalance = from.HeldBalance.Sub(amount)
		to.AvailableBalance = to.AvailableBalance.Add(amount)
		if fromAccountID == toAccountID {
			// single row: both legs land on the same wallet
			from.AvailableBalance = to.AvailableBalance
			to = from
		}

		if _, err := s.writeEntry(ctx, from, &domain.LedgerEntry{
			AccountID:        fromAccountID,
			Type:             domain.EntryTypeWagerSettle,
			Amount:           amount,
			ResultingBalance: from.AvailableBalance,
			Reference:        reference + ":out",
		}); err != nil {
			return err
		}

		if fromAccountID == toAccountID {
			return nil
		}

		_, err = s.writeEntry(ctx, to, &domain.LedgerEntry{
			AccountID:        toAccountID,
			Type:             domain.EntryTypeWagerSettle,
			Amount:           amount,
			ResultingBalance: to.AvailableBalance,
			Reference:        reference + ":in",
		})
		return err
	})
}

// RecordFailure appends a FAILED entry with no balance movement, keeping the
// audit trail of processor callbacks that did not complete.
func (s *Service) RecordFailure(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.ledgerRepo.FindByReference(ctx, reference)
		if err != nil {
			return err
		}
		if existing != nil {
			entry = existing
			return nil
		}

		wallet, err := s.walletRepo.GetWallet(ctx, accountID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		entry, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			AccountID:        accountID,
			Type:             entryType,
			Amount:           amount,
			ResultingBalance: wallet.AvailableBalance,
			Reference:        reference,
			Status:           domain.EntryStatusFailed,
			CreatedAt:        time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// lockForEntry is the common prologue of every balance mutation: replay
// detection by reference, then an exclusive lock on the wallet row.
func (s *Service) lockForEntry(ctx context.Context, accountID int, reference string) (*domain.LedgerEntry, *domain.Wallet, error) {
	existing, err := s.ledgerRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		if existing.Status == domain.EntryStatusSucceeded {
			return existing, nil, nil
		}
		return nil, nil, ErrReferenceUsed
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if wallet == nil {
		return nil, nil, ErrWalletNotFound
	}
	return nil, wallet, nil
}

// writeEntry persists the mutated balances and the ledger entry covering
// them, finalizing the entry in the same transaction.
func (s *Service) writeEntry(ctx context.Context, wallet *domain.Wallet, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if err := s.walletRepo.UpdateBalances(ctx, wallet); err != nil {
		return nil, err
	}
	entry.Status = domain.EntryStatusPending
	entry.CreatedAt = time.Now()
	appended, err := s.ledgerRepo.Append(ctx, entry)
	if err != nil {
		return nil, err
	}
	if appended == nil {
		return nil, ErrReferenceUsed
	}
	if err := s.ledgerRepo.MarkSucceeded(ctx, appended.ID); err != nil {
		return nil, err
	}
	appended.Status = domain.EntryStatusSucceeded
	return appended, nil
}
