package wager

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/dto"
	wagerservice "github.com/spatocode/capperhub/internal/service/wagerservice"
	walletservice "github.com/spatocode/capperhub/internal/service/walletservice"
	"github.com/spatocode/capperhub/pkg/auth"
	"github.com/spatocode/capperhub/pkg/utils"
)

type Service interface {
	PlaceWager(ctx context.Context, backerID int, p wagerservice.PlaceWagerParams) (*domain.Wager, error)
	MatchWager(ctx context.Context, layerID int, wagerID, layerOption string) (*domain.Wager, error)
	AcceptInvitation(ctx context.Context, requesteeID, invitationID int, layerOption string) (*domain.Wager, error)
	SettleWager(ctx context.Context, wagerID string, winnerID int, resultContext string) (*domain.Wager, error)
	VoidWager(ctx context.Context, wagerID string) (*domain.Wager, error)
	GetWager(ctx context.Context, wagerID string) (*domain.Wager, error)
	ListWagers(ctx context.Context, accountID int) ([]domain.Wager, error)
	ListInvitedWagers(ctx context.Context, requesteeID int) ([]domain.Wager, error)
}

type WagerHandler struct {
	wagerService Service
}

func New(wagerService Service) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
	}
}

// PlaceWager godoc
//
//	@Summary		Place a wager
//	@Description	Escrow the stake and open a wager, optionally inviting a named opponent.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceWagerRequestDTO	true	"Wager payload"
//	@Success		200		{object}	dto.WagerResponseDTO		"Placed wager"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Cannot wager against yourself"
//	@Failure		422		{object}	utils.Response				"Invalid stake"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wagers [post]
func (h *WagerHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.PlaceWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wager, err := h.wagerService.PlaceWager(r.Context(), accountID, wagerservice.PlaceWagerParams{
		Market:     req.Market,
		Option:     req.Option,
		Stake:      req.Stake,
		IsPublic:   req.IsPublic,
		OpponentID: req.Opponent,
	})
	if err != nil {
		respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTO(wager))
}

// MatchWager godoc
//
//	@Summary		Match a public wager
//	@Description	Take the opposite side of a pending public wager, escrowing a matching stake.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			wagerID	path		string						true	"Wager ID"
//	@Param			request	body		dto.MatchWagerRequestDTO	true	"Match payload"
//	@Success		200		{object}	dto.WagerResponseDTO		"Matched wager"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Not open for matching"
//	@Failure		404		{object}	utils.Response				"Wager not found"
//	@Failure		409		{object}	utils.Response				"Already matched"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wagers/{wagerID}/match [post]
func (h *WagerHandler) MatchWager(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)
	wagerID := chi.URLParam(r, "wagerID")

	var req dto.MatchWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wager, err := h.wagerService.MatchWager(r.Context(), accountID, wagerID, req.LayerOption)
	if err != nil {
		respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTO(wager))
}

// AcceptInvitation godoc
//
//	@Summary		Accept a wager invitation
//	@Description	Accept a direct challenge, escrowing a matching stake and locking the wager.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			invitationID	path		int								true	"Invitation ID"
//	@Param			request			body		dto.AcceptInvitationRequestDTO	true	"Accept payload"
//	@Success		200				{object}	dto.WagerResponseDTO			"Matched wager"
//	@Failure		401				{object}	utils.Response					"User not authorized"
//	@Failure		402				{object}	utils.Response					"Insufficient balance"
//	@Failure		403				{object}	utils.Response					"Invitation addressed to another account"
//	@Failure		404				{object}	utils.Response					"Invitation not found"
//	@Failure		409				{object}	utils.Response					"Already accepted"
//	@Failure		500				{object}	utils.Response					"Internal server error"
//	@Router			/api/user/invitations/{invitationID}/accept [post]
func (h *WagerHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	invitationID, err := strconv.Atoi(chi.URLParam(r, "invitationID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid invitation id")
		return
	}

	var req dto.AcceptInvitationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wager, err := h.wagerService.AcceptInvitation(r.Context(), accountID, invitationID, req.LayerOption)
	if err != nil {
		respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTO(wager))
}

// SettleWager godoc
//
//	@Summary		Settle a matched wager
//	@Description	Pay both escrowed stakes to the winner and close the wager. Requires an operator token.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			wagerID	path		string						true	"Wager ID"
//	@Param			request	body		dto.SettleWagerRequestDTO	true	"Settlement payload"
//	@Success		200		{object}	dto.WagerResponseDTO		"Settled wager"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not an operator, or winner is not a party"
//	@Failure		404		{object}	utils.Response				"Wager not found"
//	@Failure		409		{object}	utils.Response				"Not in a settleable state"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wagers/{wagerID}/settle [post]
func (h *WagerHandler) SettleWager(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerID")

	var req dto.SettleWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wager, err := h.wagerService.SettleWager(r.Context(), wagerID, req.Winner, req.Result)
	if err != nil {
		respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTO(wager))
}

// VoidWager godoc
//
//	@Summary		Void a wager
//	@Description	Cancel a pending or matched wager and refund every escrowed stake in full. Requires an operator token.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Produce		json
//	@Param			wagerID	path		string					true	"Wager ID"
//	@Success		200		{object}	dto.WagerResponseDTO	"Voided wager"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not an operator"
//	@Failure		404		{object}	utils.Response			"Wager not found"
//	@Failure		409		{object}	utils.Response			"Already settled or void"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wagers/{wagerID}/void [post]
func (h *WagerHandler) VoidWager(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerID")

	wager, err := h.wagerService.VoidWager(r.Context(), wagerID)
	if err != nil {
		respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTO(wager))
}

// GetWagers godoc
//
//	@Summary		List wagers
//	@Description	Get all wagers where the authenticated account backs or lays.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WagerResponseDTO	"Wagers"
//	@Success		204	{object}	utils.Response			"No wagers"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wagers [get]
func (h *WagerHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	wagers, err := h.wagerService.ListWagers(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wagers")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Wagers not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTOs(wagers))
}

// GetInvitations godoc
//
//	@Summary		List wager invitations
//	@Description	Get pending wagers the authenticated account has been challenged to.
//	@Tags			Wager
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WagerResponseDTO	"Invited wagers"
//	@Success		204	{object}	utils.Response			"No invitations"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/invitations [get]
func (h *WagerHandler) GetInvitations(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	wagers, err := h.wagerService.ListInvitedWagers(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch invitations")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Invitations not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWagerDTOs(wagers))
}

func respondWagerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, wagerservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, wagerservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, wagerservice.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWagerDTO(wager *domain.Wager) dto.WagerResponseDTO {
	return dto.WagerResponseDTO{
		ID:           wager.ID,
		Backer:       wager.BackerID,
		Layer:        wager.LayerID,
		Market:       wager.Market,
		BackerOption: wager.BackerOption,
		LayerOption:  wager.LayerOption,
		Stake:        wager.Stake,
		IsPublic:     wager.IsPublic,
		Status:       wager.Status,
		Winner:       wager.WinnerID,
		PlacedAt:     wager.PlacedAt,
		MatchedAt:    wager.MatchedAt,
	}
}

func toWagerDTOs(wagers []domain.Wager) []dto.WagerResponseDTO {
	response := make([]dto.WagerResponseDTO, len(wagers))
	for i := range wagers {
		response[i] = toWagerDTO(&wagers[i])
	}
	return response
}
