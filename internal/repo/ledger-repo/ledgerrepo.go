package ledgerrepo

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

// Append inserts a new ledger entry. The reference column is unique; when a
// replayed reference collides the insert is a no-op and the already stored
// entry is returned, which is what makes retried payment callbacks safe.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (account_id, type, amount, resulting_balance, reference, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (reference) DO NOTHING
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		entry.AccountID, entry.Type, entry.Amount, entry.ResultingBalance,
		entry.Reference, entry.Status, entry.CreatedAt,
	).Scan(&entry.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.FindByReference(ctx, entry.Reference)
	}
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, type, amount, resulting_balance, reference, status, created_at
        FROM ledger_entries
        WHERE reference = $1
    `
	row := r.db.QueryRow(ctx, query, reference)
	var entry domain.LedgerEntry
	err := row.Scan(&entry.ID, &entry.AccountID, &entry.Type, &entry.Amount,
		&entry.ResultingBalance, &entry.Reference, &entry.Status, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ledger entry by reference", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) MarkSucceeded(ctx context.Context, entryID int) error {
	return r.markStatus(ctx, entryID, domain.EntryStatusSucceeded)
}

func (r *Repository) MarkFailed(ctx context.Context, entryID int) error {
	return r.markStatus(ctx, entryID, domain.EntryStatusFailed)
}

func (r *Repository) markStatus(ctx context.Context, entryID int, status string) error {
	query := `
        UPDATE ledger_entries
        SET status = $1
        WHERE id = $2 AND status = 'PENDING'
    `
	_, err := r.db.Exec(ctx, query, status, entryID)
	if err != nil {
		zap.L().Error("can't finalize ledger entry", zap.Int("entryID", entryID), zap.Error(err))
		return err
	}
	return nil
}

// ListByAccountID returns entries in creation order for reconstruction and
// paging UIs.
func (r *Repository) ListByAccountID(ctx context.Context, accountID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, type, amount, resulting_balance, reference, status, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY id ASC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(&entry.ID, &entry.AccountID, &entry.Type, &entry.Amount,
			&entry.ResultingBalance, &entry.Reference, &entry.Status, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
