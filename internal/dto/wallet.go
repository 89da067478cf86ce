package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletCreateRequestDTO struct {
	Currency string `json:"currency" example:"USD"`
}

type WalletResponseDTO struct {
	AccountID int             `json:"account_id" example:"42"`
	Available decimal.Decimal `json:"available_balance" example:"500.5"`
	Held      decimal.Decimal `json:"held_balance" example:"300"`
	Currency  string          `json:"currency" example:"USD"`
}

type PaymentWebhookRequestDTO struct {
	Event     string          `json:"event" example:"deposit.succeeded"`
	AccountID int             `json:"account_id" example:"42"`
	Amount    decimal.Decimal `json:"amount" example:"1000"`
	Reference string          `json:"reference" example:"ps_8f14e45fceea167a"`
}

type LedgerEntryResponseDTO struct {
	Type             string          `json:"type" example:"DEPOSIT"`
	Amount           decimal.Decimal `json:"amount" example:"1000"`
	ResultingBalance decimal.Decimal `json:"resulting_balance" example:"1500"`
	Reference        string          `json:"reference" example:"ps_8f14e45fceea167a"`
	Status           string          `json:"status" example:"SUCCEEDED"`
	CreatedAt        time.Time       `json:"created_at" example:"2023-03-21T21:27:38+00:00"`
}
