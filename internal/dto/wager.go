package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlaceWagerRequestDTO struct {
	Market   string          `json:"market" example:"full-time-result"`
	Option   string          `json:"option" example:"home-win"`
	Stake    decimal.Decimal `json:"stake" example:"300"`
	IsPublic bool            `json:"is_public" example:"true"`
	Opponent *int            `json:"opponent,omitempty" example:"7"`
}

type MatchWagerRequestDTO struct {
	LayerOption string `json:"layer_option" example:"away-win"`
}

type AcceptInvitationRequestDTO struct {
	LayerOption string `json:"layer_option" example:"away-win"`
}

type SettleWagerRequestDTO struct {
	Winner int    `json:"winner" example:"42"`
	Result string `json:"result" example:"2-1"`
}

type WagerResponseDTO struct {
	ID           string          `json:"id" example:"xK4mQp2r"`
	Backer       int             `json:"backer" example:"42"`
	Layer        *int            `json:"layer,omitempty" example:"7"`
	Market       string          `json:"market" example:"full-time-result"`
	BackerOption string          `json:"backer_option" example:"home-win"`
	LayerOption  *string         `json:"layer_option,omitempty" example:"away-win"`
	Stake        decimal.Decimal `json:"stake" example:"300"`
	IsPublic     bool            `json:"is_public" example:"true"`
	Status       string          `json:"status" example:"PENDING"`
	Winner       *int            `json:"winner,omitempty" example:"42"`
	PlacedAt     time.Time       `json:"placed_at" example:"2023-03-21T21:27:38+00:00"`
	MatchedAt    *time.Time      `json:"matched_at,omitempty" example:"2023-03-21T22:01:12+00:00"`
}
