package wagerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func wagerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "backer_id", "layer_id", "market", "backer_option",
		"layer_option", "stake", "is_public", "status", "winner_id", "placed_at", "matched_at",
		"hold_reference", "settle_reference"})
}

func sampleWager() *domain.Wager {
	return &domain.Wager{
		ID:            "xK4mQp2r",
		BackerID:      1,
		Market:        "full-time-result",
		BackerOption:  "home-win",
		Stake:         decimal.NewFromInt(300),
		IsPublic:      true,
		Status:        domain.WagerStatusPending,
		PlacedAt:      time.Date(2023, 3, 21, 21, 27, 38, 0, time.UTC),
		HoldReference: "holdref",
	}
}

func addWagerRow(rows *pgxmock.Rows, w *domain.Wager) *pgxmock.Rows {
	return rows.AddRow(w.ID, w.BackerID, w.LayerID, w.Market, w.BackerOption, w.LayerOption,
		w.Stake, w.IsPublic, w.Status, w.WinnerID, w.PlacedAt, w.MatchedAt,
		w.HoldReference, w.SettleReference)
}

func TestRepository_CreateWager(t *testing.T) {
	repo, mock := NewMock(t)
	w := sampleWager()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wagers`)).
		WithArgs(w.ID, w.BackerID, w.Market, w.BackerOption, w.Stake, w.IsPublic,
			w.Status, w.PlacedAt, w.HoldReference).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreateWager(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWager(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		wagerID   string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:    "Existing wager",
			wagerID: "xK4mQp2r",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs("xK4mQp2r").
					WillReturnRows(addWagerRow(wagerRows(), sampleWager()))
			},
			found: true,
		},
		{
			name:    "Unknown wager returns nil",
			wagerID: "missing1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs("missing1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			wagerID: "xK4mQp2r",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wagers`)).
					WithArgs("xK4mQp2r").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wager, err := repo.GetWager(context.Background(), tt.wagerID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, tt.wagerID, wager.ID)
			} else {
				assert.Nil(t, wager)
			}
		})
	}
}

func TestRepository_GetWagerForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("xK4mQp2r").
		WillReturnRows(addWagerRow(wagerRows(), sampleWager()))

	wager, err := repo.GetWagerForUpdate(context.Background(), "xK4mQp2r")
	assert.NoError(t, err)
	assert.Equal(t, domain.WagerStatusPending, wager.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateWager(t *testing.T) {
	repo, mock := NewMock(t)

	w := sampleWager()
	layerID := 2
	option := "away-win"
	now := time.Now()
	w.LayerID = &layerID
	w.LayerOption = &option
	w.MatchedAt = &now
	w.Status = domain.WagerStatusMatched

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE wagers`)).
		WithArgs(w.LayerID, w.LayerOption, w.Status, w.WinnerID, w.MatchedAt, w.SettleReference, w.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateWager(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByAccountID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE backer_id = $1 OR layer_id = $1`)).
		WithArgs(1).
		WillReturnRows(addWagerRow(wagerRows(), sampleWager()))

	wagers, err := repo.ListByAccountID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, wagers, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Invitations(t *testing.T) {
	repo, mock := NewMock(t)

	created := time.Date(2023, 3, 21, 21, 27, 38, 0, time.UTC)

	t.Run("CreateInvitation returns the generated id", func(t *testing.T) {
		invitation := &domain.WagerInvitation{
			WagerID:     "xK4mQp2r",
			RequestorID: 1,
			RequesteeID: 2,
			CreatedAt:   created,
		}
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wager_invitations`)).
			WithArgs("xK4mQp2r", 1, 2, false, created).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

		assert.NoError(t, repo.CreateInvitation(context.Background(), invitation))
		assert.Equal(t, 5, invitation.ID)
	})

	t.Run("GetInvitation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wager_invitations`)).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows([]string{"id", "wager_id", "requestor_id", "requestee_id", "accepted", "created_at"}).
				AddRow(5, "xK4mQp2r", 1, 2, false, created))

		invitation, err := repo.GetInvitation(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 2, invitation.RequesteeID)
	})

	t.Run("GetInvitation unknown id returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wager_invitations`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		invitation, err := repo.GetInvitation(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, invitation)
	})

	t.Run("MarkInvitationAccepted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET accepted = TRUE`)).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkInvitationAccepted(context.Background(), 5))
	})

	t.Run("ListInvitedWagers joins pending wagers", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`JOIN wager_invitations`)).
			WithArgs(2).
			WillReturnRows(addWagerRow(wagerRows(), sampleWager()))

		wagers, err := repo.ListInvitedWagers(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, wagers, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
