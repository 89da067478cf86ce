package subscriptionservice

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
	CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetActive(ctx context.Context, issuerID, subscriberID int) (*domain.Subscription, error)
	GetActiveByPlan(ctx context.Context, issuerID, subscriberID int, planType string) (*domain.Subscription, error)
	Deactivate(ctx context.Context, subscriptionID int) error
	ExpirePremium(ctx context.Context, accountID int) error
	FindExpiredPremium(ctx context.Context, limit uint32) ([]domain.Subscription, error)
	ListBySubscriber(ctx context.Context, subscriberID int) ([]domain.Subscription, error)
	ListByIssuer(ctx context.Context, issuerID int) ([]domain.Subscription, error)
	GetPricing(ctx context.Context, accountID int) (*domain.Pricing, error)
	SavePricing(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error)
}

type Wallet interface {
	Debit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error)
	Credit(ctx context.Context, accountID int, amount decimal.Decimal, entryType, reference string) (*domain.LedgerEntry, error)
}

var (
	ErrSelfSubscription      = errors.New("can't subscribe to yourself")
	ErrDuplicateSubscription = errors.New("already subscribed to this plan")
	ErrNotSubscribed         = errors.New("not subscribed to this plan")
	ErrInvalidPlan           = errors.New("unknown plan type")
	ErrPricingNotSet         = errors.New("issuer has no pricing")
	ErrPricingLocked         = errors.New("pricing can only be updated once in 60 days")
)

// Issuer pricing may change at most once per this window.
const pricingUpdateWindow = 60 * 24 * time.Hour

// A pricing discount kicks in for periods longer than this.
const discountThresholdDays = 30

type Service struct {
	repo      Repo
	wallet    Wallet
	txManager pg.TXManager
	emitter   events.Emitter
	feeRate   decimal.Decimal
}

func New(repo Repo, wallet Wallet, txManager pg.TXManager, emitter events.Emitter, platformFeeRate float64) *Service {
	return &Service{
		repo:      repo,
		wallet:    wallet,
		txManager: txManager,
		emitter:   emitter,
		feeRate:   decimal.NewFromFloat(platformFeeRate),
	}
}

// Subscribe creates a new subscription between subscriber and issuer. A
// premium plan charges the subscriber's wallet and credits the issuer net
// of the platform fee, all in one unit with the subscription row.
func (s *Service) Subscribe(ctx context.Context, subscriberID, issuerID int, planType string, periodDays int) (*domain.Subscription, error) {
	if subscriberID == issuerID {
		return nil, ErrSelfSubscription
	}
	if planType != domain.PlanFree && planType != domain.PlanTrial && planType != domain.PlanPremium {
		return nil, ErrInvalidPlan
	}

	var sub *domain.Subscription
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		// lapsed premium rows must not block a re-subscribe
		if err := s.repo.ExpirePremium(ctx, subscriberID); err != nil {
			return err
		}

		previous, err := s.repo.GetActive(ctx, issuerID, subscriberID)
		if err != nil {
			return err
		}
		if previous != nil {
			if previous.PlanType == domain.PlanFree && planType == domain.PlanFree {
				return ErrDuplicateSubscription
			}
			if previous.PlanType == domain.PlanPremium {
				return ErrDuplicateSubscription
			}
		}

		var paymentRef *string
		if planType == domain.PlanPremium {
			ref, err := s.chargePremium(ctx, subscriberID, issuerID, periodDays)
			if err != nil {
				return err
			}
			paymentRef = &ref
		}

		// exclusivity: the new subscription supersedes whatever survived
		if previous != nil {
			if err := s.repo.Deactivate(ctx, previous.ID); err != nil {
				return err
			}
		}

		now := time.Now()
		var expiresAt *time.Time
		if periodDays > 0 {
			t := now.AddDate(0, 0, periodDays)
			expiresAt = &t
		}
		sub, err = s.repo.CreateSubscription(ctx, &domain.Subscription{
			IssuerID:         issuerID,
			SubscriberID:     subscriberID,
			PlanType:         planType,
			PeriodDays:       periodDays,
			StartedAt:        now,
			ExpiresAt:        expiresAt,
			IsActive:         true,
			PaymentReference: paymentRef,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventSubscriptionCreated, Payload: sub})
	return sub, nil
}

// chargePremium debits the subscriber and credits the issuer net of the
// platform fee. The fee stays on the platform, it is never transferred.
func (s *Service) chargePremium(ctx context.Context, subscriberID, issuerID, periodDays int) (string, error) {
	pricing, err := s.repo.GetPricing(ctx, issuerID)
	if err != nil {
		return "", err
	}
	if pricing == nil {
		return "", ErrPricingNotSet
	}

	price := pricing.Amount
	if periodDays > discountThresholdDays {
		price = price.Mul(decimal.NewFromInt(1).Sub(pricing.PercentageDiscount))
	}

	ref := codegen.Reference()
	if _, err := s.wallet.Debit(ctx, subscriberID, price, domain.EntryTypeSubscriptionCharge, ref); err != nil {
		return "", err
	}
	issuerShare := price.Mul(decimal.NewFromInt(1).Sub(s.feeRate))
	if _, err := s.wallet.Credit(ctx, issuerID, issuerShare, domain.EntryTypeSubscriptionCharge, ref+":issuer"); err != nil {
		return "", err
	}
	return ref, nil
}

// Unsubscribe deactivates the active subscription of exactly that plan
// type. No refund is issued for the unused premium period.
func (s *Service) Unsubscribe(ctx context.Context, subscriberID, issuerID int, planType string) (*domain.Subscription, error) {
	var sub *domain.Subscription
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.repo.GetActiveByPlan(ctx, issuerID, subscriberID, planType)
		if err != nil {
			return err
		}
		if sub == nil {
			return ErrNotSubscribed
		}
		if err := s.repo.Deactivate(ctx, sub.ID); err != nil {
			return err
		}
		sub.IsActive = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(events.Event{Type: events.EventSubscriptionCancelled, Payload: sub})
	return sub, nil
}

// SyncExpirations lazily deactivates lapsed premium subscriptions the
// account is party to, so list reads never show a stale active row.
func (s *Service) SyncExpirations(ctx context.Context, accountID int) error {
	return s.repo.ExpirePremium(ctx, accountID)
}

func (s *Service) ListSubscriptions(ctx context.Context, subscriberID int) ([]domain.Subscription, error) {
	if err := s.SyncExpirations(ctx, subscriberID); err != nil {
		return nil, err
	}
	subs, err := s.repo.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		zap.L().Error("failed to fetch subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) ListSubscribers(ctx context.Context, issuerID int) ([]domain.Subscription, error) {
	if err := s.SyncExpirations(ctx, issuerID); err != nil {
		return nil, err
	}
	subs, err := s.repo.ListByIssuer(ctx, issuerID)
	if err != nil {
		zap.L().Error("failed to fetch subscribers", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

// UpdatePricing upserts the issuer's pricing. A changed amount is accepted
// at most once per 60 days.
func (s *Service) UpdatePricing(ctx context.Context, accountID int, amount, percentageDiscount decimal.Decimal) (*domain.Pricing, error) {
	existing, err := s.repo.GetPricing(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Amount.Equal(amount) {
		if existing.LastUpdate.Add(pricingUpdateWindow).After(time.Now()) {
			return nil, ErrPricingLocked
		}
	}

	pricing, err := s.repo.SavePricing(ctx, &domain.Pricing{
		AccountID:          accountID,
		Amount:             amount,
		PercentageDiscount: percentageDiscount,
		LastUpdate:         time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to save pricing", zap.Error(err))
		return nil, err
	}
	return pricing, nil
}
