package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry types.
const (
	EntryTypeDeposit            = "DEPOSIT"
	EntryTypeWithdrawal         = "WITHDRAWAL"
	EntryTypeWagerHold          = "WAGER_HOLD"
	EntryTypeWagerRelease       = "WAGER_RELEASE"
	EntryTypeWagerSettle        = "WAGER_SETTLE"
	EntryTypeSubscriptionCharge = "SUBSCRIPTION_CHARGE"
)

// Ledger entry statuses.
const (
	EntryStatusPending   = "PENDING"
	EntryStatusSucceeded = "SUCCEEDED"
	EntryStatusFailed    = "FAILED"
)

// Wager statuses.
const (
	WagerStatusPending = "PENDING"
	WagerStatusMatched = "MATCHED"
	WagerStatusSettled = "SETTLED"
	WagerStatusVoid    = "VOID"
)

// Subscription plan types.
const (
	PlanFree    = "FREE"
	PlanTrial   = "TRIAL"
	PlanPremium = "PREMIUM"
)

type Wallet struct {
	ID               int             `db:"id"`
	AccountID        int             `db:"account_id"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	HeldBalance      decimal.Decimal `db:"held_balance"`
	Currency         string          `db:"currency"`
}

type LedgerEntry struct {
	ID               int             `db:"id"`
	AccountID        int             `db:"account_id"`
	Type             string          `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	ResultingBalance decimal.Decimal `db:"resulting_balance"`
	Reference        string          `db:"reference"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Wager struct {
	ID              string          `db:"id"`
	BackerID        int             `db:"backer_id"`
	LayerID         *int            `db:"layer_id"`
	Market          string          `db:"market"`
	BackerOption    string          `db:"backer_option"`
	LayerOption     *string         `db:"layer_option"`
	Stake           decimal.Decimal `db:"stake"`
	IsPublic        bool            `db:"is_public"`
	Status          string          `db:"status"`
	WinnerID        *int            `db:"winner_id"`
	PlacedAt        time.Time       `db:"placed_at"`
	MatchedAt       *time.Time      `db:"matched_at"`
	HoldReference   string          `db:"hold_reference"`
	SettleReference *string         `db:"settle_reference"`
}

type WagerInvitation struct {
	ID          int       `db:"id"`
	WagerID     string    `db:"wager_id"`
	RequestorID int       `db:"requestor_id"`
	RequesteeID int       `db:"requestee_id"`
	Accepted    bool      `db:"accepted"`
	CreatedAt   time.Time `db:"created_at"`
}

type Subscription struct {
	ID               int        `db:"id"`
	IssuerID         int        `db:"issuer_id"`
	SubscriberID     int        `db:"subscriber_id"`
	PlanType         string     `db:"plan_type"`
	PeriodDays       int        `db:"period_days"`
	StartedAt        time.Time  `db:"started_at"`
	ExpiresAt        *time.Time `db:"expires_at"`
	IsActive         bool       `db:"is_active"`
	PaymentReference *string    `db:"payment_reference"`
}

type Pricing struct {
	ID                 int             `db:"id"`
	AccountID          int             `db:"account_id"`
	Amount             decimal.Decimal `db:"amount"`
	PercentageDiscount decimal.Decimal `db:"percentage_discount"`
	LastUpdate         time.Time       `db:"last_update"`
}
