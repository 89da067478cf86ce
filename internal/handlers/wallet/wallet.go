package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/dto"
	walletservice "github.com/spatocode/capperhub/internal/service/walletservice"
	"github.com/spatocode/capperhub/pkg/auth"
	"github.com/spatocode/capperhub/pkg/utils"
)

const defaultPageSize = 50

type Service interface {
	CreateWallet(ctx context.Context, accountID int, currency string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, accountID int) (*domain.Wallet, error)
	ListLedgerEntries(ctx context.Context, accountID, limit, offset int) ([]domain.LedgerEntry, error)
	Credit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error)
	Debit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error)
	RecordFailure(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// CreateWallet godoc
//
//	@Summary		Create a wallet
//	@Description	Provision a wallet for the authenticated account.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletCreateRequestDTO	true	"Wallet payload"
//	@Success		200		{object}	dto.WalletResponseDTO		"Created wallet"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		409		{object}	utils.Response				"Wallet already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.WalletCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	wallet, err := h.walletService.CreateWallet(r.Context(), accountID, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletDTO(wallet))
}

// GetWallet godoc
//
//	@Summary		Get wallet balances
//	@Description	Retrieve the available and held balance for the authenticated account.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWalletDTO(wallet))
}

// GetLedger godoc
//
//	@Summary		Get ledger history
//	@Description	Get the account's ledger entries in creation order, paged via limit and offset.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Page size"
//	@Param			offset	query		int								false	"Page offset"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO		"Ledger entries"
//	@Success		204		{object}	utils.Response					"No entries"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	limit := queryInt(r, "limit", defaultPageSize)
	offset := queryInt(r, "offset", 0)

	entries, err := h.walletService.ListLedgerEntries(r.Context(), accountID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger entries")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Ledger entries not found")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			Type:             entry.Type,
			Amount:           entry.Amount,
			ResultingBalance: entry.ResultingBalance,
			Reference:        entry.Reference,
			Status:           entry.Status,
			CreatedAt:        entry.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PaymentWebhook godoc
//
//	@Summary		Payment processor callback
//	@Description	Record a confirmed deposit or withdrawal. Replays of the same reference are no-ops.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentWebhookRequestDTO	true	"Processor event payload"
//	@Success		200		{string}	string							"Event recorded"
//	@Failure		400		{object}	utils.Response					"Unknown event"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		422		{object}	utils.Response					"Invalid amount"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/webhook/payment [post]
func (h *WalletHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentWebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var err error
	switch req.Event {
	case "deposit.succeeded":
		_, err = h.walletService.Credit(r.Context(), req.AccountID, req.Amount, domain.EntryTypeDeposit, req.Reference)
	case "deposit.failed":
		_, err = h.walletService.RecordFailure(r.Context(), req.AccountID, req.Amount, domain.EntryTypeDeposit, req.Reference)
	case "withdrawal.succeeded":
		_, err = h.walletService.Debit(r.Context(), req.AccountID, req.Amount, domain.EntryTypeWithdrawal, req.Reference)
	case "withdrawal.failed":
		_, err = h.walletService.RecordFailure(r.Context(), req.AccountID, req.Amount, domain.EntryTypeWithdrawal, req.Reference)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown event")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "event recorded")
}

func toWalletDTO(wallet *domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		AccountID: wallet.AccountID,
		Available: wallet.AvailableBalance,
		Held:      wallet.HeldBalance,
		Currency:  wallet.Currency,
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
