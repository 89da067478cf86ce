package wagerservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/events"
	"github.com/spatocode/capperhub/internal/pg"
	"github.com/spatocode/capperhub/pkg/codegen"
	"go.uber.org/zap"
)

type Repo interface {
	CreateWager(ctx context.Context, wager *domain.Wager) error
	GetWager(ctx context.Context, wagerID string) (*domain.Wager, error)
	GetWagerForUpdate(ctx context.Context, wagerID string) (*domain.Wager, error)
	UpdateWager(ctx context.Context, wager *domain.Wager) error
	ListByAccountID(ctx context.Context, accountID int) ([]domain.Wager, error)
	CreateInvitation(ctx context.Context, invitation *domain.WagerInvitation) error
	GetInvitation(ctx context.Context, invitationID int) (*domain.WagerInvitation, error)
	MarkInvitationAccepted(ctx context.Context, invitationID int) error
	ListInvitedWagers(ctx context.Context, requesteeID int) ([]domain.Wager, error)
}

// Wallet is the escrow surface the engine drives. Calls made inside a
// transaction join it, so a failed hold aborts wager creation entirely.
type Wallet interface {
	Hold(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error)
	Release(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error)
	TransferHeld(ctx context.Context, fromAccountID, toAccountID int, amount decimal.Decimal, reference string) error
}

var (
	ErrNotFound  = errors.New("wager not found")
	ErrForbidden = errors.New("action not permitted")
	ErrConflict  = errors.New("wager no longer available")
)

type PlaceWagerParams struct {
	Market     string
	Option     string
	Stake      decimal.Decimal
	IsPublic   bool
	OpponentID *int
}

type Service struct {
	repo      Repo
	wallet    Wallet
	txManager pg.TXManager
	emitter   events.Emitter
}

func New(repo Repo, wallet Wallet, txManager pg.TXManager, emitter events.Emitter) *Service {
	return &Service{
		repo:      repo,
		wallet:    wallet,
		txManager: txManager,
		emitter:   emitter,
	}
}

// PlaceWager holds the backer's stake in escrow and creates the wager in
// one unit. Naming an opponent makes the wager private: it can only be
// matched by accepting the invitation created here.
func (s *Service) PlaceWager(ctx context.Context, backerID int, p PlaceWagerParams) (*domain.Wager, error) {
	if p.OpponentID != nil && *p.OpponentID == backerID {
		return nil, ErrForbidden
	}

	wager := &domain.Wager{
		ID:            codegen.WagerID(),
		BackerID:      backerID,
		Market:        p.Market,
		BackerOption:  p.Option,
		Stake:         p.Stake,
		IsPublic:      p.IsPublic && p.OpponentID == nil,
		Status:        domain.WagerStatusPending,
		PlacedAt:      time.Now(),
		HoldReference: codegen.Reference(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.wallet.Hold(ctx, backerID, p.Stake, wager.HoldReference); err != nil {
			return err
		}
		if err := s.repo.CreateWager(ctx, wager); err != nil {
			return err
		}
		if p.OpponentID != nil {
			invitation := &domain.WagerInvitation{
				WagerID:     wager.ID,
				RequestorID: backerID,
				RequesteeID: *p.OpponentID,
				CreatedAt:   time.Now(),
			}
			if err := s.repo.CreateInvitation(ctx, invitation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventWagerCreated, Payload: wager})
	return wager, nil
}

// MatchWager is the open matching path. The wager row lock plus the status
// re-check under it make the first valid matcher the only one to flip
// PENDING to MATCHED.
func (s *Service) MatchWager(ctx context.Context, layerID int, wagerID, layerOption string) (*domain.Wager, error) {
	var wager *domain.Wager
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wager, err = s.lockPendingWager(ctx, wagerID, layerID)
		if err != nil {
			return err
		}
		if !wager.IsPublic {
			return ErrForbidden
		}
		return s.matchLocked(ctx, wager, layerID, layerOption)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventWagerMatched, Payload: wager})
	return wager, nil
}

// AcceptInvitation matches a wager on behalf of the invited party and marks
// the invitation accepted.
func (s *Service) AcceptInvitation(ctx context.Context, requesteeID, invitationID int, layerOption string) (*domain.Wager, error) {
	var wager *domain.Wager
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		invitation, err := s.repo.GetInvitation(ctx, invitationID)
		if err != nil {
			return err
		}
		if invitation == nil {
			return ErrNotFound
		}
		if invitation.RequesteeID != requesteeID {
			return ErrForbidden
		}
		if invitation.Accepted {
			return ErrConflict
		}

		wager, err = s.lockPendingWager(ctx, invitation.WagerID, requesteeID)
		if err != nil {
			return err
		}
		if err := s.matchLocked(ctx, wager, requesteeID, layerOption); err != nil {
			return err
		}
		return s.repo.MarkInvitationAccepted(ctx, invitationID)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventWagerMatched, Payload: wager})
	return wager, nil
}

// SettleWager pays both held stakes to the winner. Driven by resolution of
// the underlying market, not by either party.
func (s *Service) SettleWager(ctx context.Context, wagerID string, winnerID int, resultContext string) (*domain.Wager, error) {
	var wager *domain.Wager
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wager, err = s.repo.GetWagerForUpdate(ctx, wagerID)
		if err != nil {
			return err
		}
		if wager == nil {
			return ErrNotFound
		}
		if wager.Status != domain.WagerStatusMatched {
			return ErrConflict
		}
		if winnerID != wager.BackerID && (wager.LayerID == nil || winnerID != *wager.LayerID) {
			return ErrForbidden
		}

		settleRef := codegen.Reference()
		if err := s.wallet.TransferHeld(ctx, wager.BackerID, winnerID, wager.Stake, settleRef+"-b"); err != nil {
			return err
		}
		if err := s.wallet.TransferHeld(ctx, *wager.LayerID, winnerID, wager.Stake, settleRef+"-l"); err != nil {
			return err
		}

		wager.Status = domain.WagerStatusSettled
		wager.WinnerID = &winnerID
		wager.SettleReference = &settleRef
		return s.repo.UpdateWager(ctx, wager)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("wager settled",
		zap.String("wagerID", wager.ID),
		zap.Int("winnerID", winnerID),
		zap.String("result", resultContext))
	s.emitter.Emit(events.Event{Type: events.EventWagerSettled, Payload: wager})
	return wager, nil
}

// VoidWager returns held stakes to their owners, from PENDING or MATCHED.
func (s *Service) VoidWager(ctx context.Context, wagerID string) (*domain.Wager, error) {
	var wager *domain.Wager
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wager, err = s.repo.GetWagerForUpdate(ctx, wagerID)
		if err != nil {
			return err
		}
		if wager == nil {
			return ErrNotFound
		}
		if wager.Status != domain.WagerStatusPending && wager.Status != domain.WagerStatusMatched {
			return ErrConflict
		}

		if _, err := s.wallet.Release(ctx, wager.BackerID, wager.Stake, codegen.Reference()); err != nil {
			return err
		}
		if wager.Status == domain.WagerStatusMatched {
			if _, err := s.wallet.Release(ctx, *wager.LayerID, wager.Stake, codegen.Reference()); err != nil {
				return err
			}
		}

		wager.Status = domain.WagerStatusVoid
		return s.repo.UpdateWager(ctx, wager)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventWagerVoided, Payload: wager})
	return wager, nil
}

func (s *Service) GetWager(ctx context.Context, wagerID string) (*domain.Wager, error) {
	wager, err := s.repo.GetWager(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if wager == nil {
		return nil, ErrNotFound
	}
	return wager, nil
}

func (s *Service) ListWagers(ctx context.Context, accountID int) ([]domain.Wager, error) {
	wagers, err := s.repo.ListByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}

func (s *Service) ListInvitedWagers(ctx context.Context, requesteeID int) ([]domain.Wager, error) {
	wagers, err := s.repo.ListInvitedWagers(ctx, requesteeID)
	if err != nil {
		zap.L().Error("failed to fetch invited wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}

func (s *Service) lockPendingWager(ctx context.Context, wagerID string, layerID int) (*domain.Wager, error) {
	wager, err := s.repo.GetWagerForUpdate(ctx, wagerID)
	if err != nil {
		return nil, err
	}
	if wager == nil {
		return nil, ErrNotFound
	}
	if wager.BackerID == layerID {
		return nil, ErrForbidden
	}
	if wager.Status != domain.WagerStatusPending {
		return nil, ErrConflict
	}
	return wager, nil
}

func (s *Service) matchLocked(ctx context.Context, wager *domain.Wager, layerID int, layerOption string) error {
	if _, err := s.wallet.Hold(ctx, layerID, wager.Stake, codegen.Reference()); err != nil {
		return err
	}

	now := time.Now()
	wager.LayerID = &layerID
	wager.LayerOption = &layerOption
	wager.MatchedAt = &now
	wager.Status = domain.WagerStatusMatched
	return s.repo.UpdateWager(ctx, wager)
}
