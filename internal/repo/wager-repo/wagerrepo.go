package wagerrepo

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

const wagerColumns = `id, backer_id, layer_id, market, backer_option, layer_option, stake,
		is_public, status, winner_id, placed_at, matched_at, hold_reference, settle_reference`

func scanWager(row pgx.Row) (*domain.Wager, error) {
	var wager domain.Wager
	err := row.Scan(&wager.ID, &wager.BackerID, &wager.LayerID, &wager.Market,
		&wager.BackerOption, &wager.LayerOption, &wager.Stake, &wager.IsPublic,
		&wager.Status, &wager.WinnerID, &wager.PlacedAt, &wager.MatchedAt,
		&wager.HoldReference, &wager.SettleReference)
	if err != nil {
		return nil, err
	}
	return &wager, nil
}

func (r *Repository) CreateWager(ctx context.Context, wager *domain.Wager) error {
	query := `
        INSERT INTO wagers (id, backer_id, market, backer_option, stake, is_public, status, placed_at, hold_reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query, wager.ID, wager.BackerID, wager.Market,
		wager.BackerOption, wager.Stake, wager.IsPublic, wager.Status,
		wager.PlacedAt, wager.HoldReference)
	if err != nil {
		zap.L().Error("can't save wager", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetWager(ctx context.Context, wagerID string) (*domain.Wager, error) {
	query := `
        SELECT ` + wagerColumns + `
        FROM wagers
        WHERE id = $1
    `
	wager, err := scanWager(r.db.QueryRow(ctx, query, wagerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wager", zap.Error(err))
		return nil, err
	}
	return wager, nil
}

// GetWagerForUpdate locks the wager row. Status checks made after this lock
// are authoritative, which turns first-matcher-wins into a real mutual
// exclusion instead of a race.
func (r *Repository) GetWagerForUpdate(ctx context.Context, wagerID string) (*domain.Wager, error) {
	query := `
        SELECT ` + wagerColumns + `
        FROM wagers
        WHERE id = $1
        FOR UPDATE
    `
	wager, err := scanWager(r.db.QueryRow(ctx, query, wagerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock wager", zap.Error(err))
		return nil, err
	}
	return wager, nil
}

func (r *Repository) UpdateWager(ctx context.Context, wager *domain.Wager) error {
	query := `
        UPDATE wagers
        SET layer_id = $1, layer_option = $2, status = $3, winner_id = $4, matched_at = $5, settle_reference = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query, wager.LayerID, wager.LayerOption, wager.Status,
		wager.WinnerID, wager.MatchedAt, wager.SettleReference, wager.ID)
	if err != nil {
		zap.L().Error("failed to update wager", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int) ([]domain.Wager, error) {
	query := `
        SELECT ` + wagerColumns + `
        FROM wagers
        WHERE backer_id = $1 OR layer_id = $1
        ORDER BY placed_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			zap.L().Error("can't scan wager row", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, *wager)
	}
	return wagers, nil
}

func (r *Repository) CreateInvitation(ctx context.Context, invitation *domain.WagerInvitation) error {
	query := `
        INSERT INTO wager_invitations (wager_id, requestor_id, requestee_id, accepted, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, invitation.WagerID, invitation.RequestorID,
		invitation.RequesteeID, invitation.Accepted, invitation.CreatedAt).Scan(&invitation.ID)
	if err != nil {
		zap.L().Error("can't save wager invitation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetInvitation(ctx context.Context, invitationID int) (*domain.WagerInvitation, error) {
	query := `
        SELECT id, wager_id, requestor_id, requestee_id, accepted, created_at
        FROM wager_invitations
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, invitationID)
	var invitation domain.WagerInvitation
	err := row.Scan(&invitation.ID, &invitation.WagerID, &invitation.RequestorID,
		&invitation.RequesteeID, &invitation.Accepted, &invitation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find wager invitation", zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

func (r *Repository) MarkInvitationAccepted(ctx context.Context, invitationID int) error {
	query := `
        UPDATE wager_invitations
        SET accepted = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, invitationID)
	if err != nil {
		zap.L().Error("failed to accept wager invitation", zap.Error(err))
		return err
	}
	return nil
}

// ListInvitedWagers returns the still-pending wagers an account has been
// challenged to.
func (r *Repository) ListInvitedWagers(ctx context.Context, requesteeID int) ([]domain.Wager, error) {
	query := `
        SELECT w.id, w.backer_id, w.layer_id, w.market, w.backer_option, w.layer_option, w.stake,
		w.is_public, w.status, w.winner_id, w.placed_at, w.matched_at, w.hold_reference, w.settle_reference
        FROM wagers w
        JOIN wager_invitations i ON i.wager_id = w.id
        WHERE i.requestee_id = $1 AND i.accepted = FALSE AND w.status = 'PENDING'
        ORDER BY i.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, requesteeID)
	if err != nil {
		zap.L().Error("can't get invited wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			zap.L().Error("can't scan invited wager row", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, *wager)
	}
	return wagers, nil
}
