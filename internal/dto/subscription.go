package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscribeRequestDTO struct {
	Issuer     int    `json:"issuer" example:"7"`
	PlanType   string `json:"plan_type" example:"PREMIUM"`
	PeriodDays int    `json:"period_days" example:"30"`
}

type UnsubscribeRequestDTO struct {
	Issuer   int    `json:"issuer" example:"7"`
	PlanType string `json:"plan_type" example:"PREMIUM"`
}

type SubscriptionResponseDTO struct {
	ID         int        `json:"id" example:"15"`
	Issuer     int        `json:"issuer" example:"7"`
	Subscriber int        `json:"subscriber" example:"42"`
	PlanType   string     `json:"plan_type" example:"PREMIUM"`
	PeriodDays int        `json:"period_days" example:"30"`
	StartedAt  time.Time  `json:"started_at" example:"2023-03-21T21:27:38+00:00"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" example:"2023-04-20T21:27:38+00:00"`
	IsActive   bool       `json:"is_active" example:"true"`
}

type PricingRequestDTO struct {
	Amount             decimal.Decimal `json:"amount" example:"100"`
	PercentageDiscount decimal.Decimal `json:"percentage_discount" example:"0.1"`
}

type PricingResponseDTO struct {
	Amount             decimal.Decimal `json:"amount" example:"100"`
	PercentageDiscount decimal.Decimal `json:"percentage_discount" example:"0.1"`
	LastUpdate         time.Time       `json:"last_update" example:"2023-03-21T21:27:38+00:00"`
}
