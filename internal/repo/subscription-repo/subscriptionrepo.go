package subscriptionrepo

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

const subscriptionColumns = `id, issuer_id, subscriber_id, plan_type, period_days, started_at, expires_at, is_active, payment_reference`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(&sub.ID, &sub.IssuerID, &sub.SubscriberID, &sub.PlanType,
		&sub.PeriodDays, &sub.StartedAt, &sub.ExpiresAt, &sub.IsActive, &sub.PaymentReference)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
        INSERT INTO subscriptions (issuer_id, subscriber_id, plan_type, period_days, started_at, expires_at, is_active, payment_reference)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, sub.IssuerID, sub.SubscriberID, sub.PlanType,
		sub.PeriodDays, sub.StartedAt, sub.ExpiresAt, sub.IsActive, sub.PaymentReference).Scan(&sub.ID)
	if err != nil {
		zap.L().Error("can't save subscription", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// GetActive returns the latest active subscription for the pair, of any
// plan type.
func (r *Repository) GetActive(ctx context.Context, issuerID, subscriberID int) (*domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE issuer_id = $1 AND subscriber_id = $2 AND is_active = TRUE
        ORDER BY started_at DESC
        LIMIT 1
    `
	sub, err := scanSubscription(r.db.QueryRow(ctx, query, issuerID, subscriberID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active subscription", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) GetActiveByPlan(ctx context.Context, issuerID, subscriberID int, planType string) (*domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE issuer_id = $1 AND subscriber_id = $2 AND plan_type = $3 AND is_active = TRUE
        ORDER BY started_at DESC
        LIMIT 1
    `
	sub, err := scanSubscription(r.db.QueryRow(ctx, query, issuerID, subscriberID, planType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active subscription by plan", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) Deactivate(ctx context.Context, subscriptionID int) error {
	query := `
        UPDATE subscriptions
        SET is_active = FALSE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, subscriptionID)
	if err != nil {
		zap.L().Error("failed to deactivate subscription", zap.Int("subscriptionID", subscriptionID), zap.Error(err))
		return err
	}
	return nil
}

// ExpirePremium deactivates every lapsed premium subscription the account is
// party to, as issuer or subscriber.
func (r *Repository) ExpirePremium(ctx context.Context, accountID int) error {
	query := `
        UPDATE subscriptions
        SET is_active = FALSE
        WHERE plan_type = 'PREMIUM' AND is_active = TRUE
          AND expires_at IS NOT NULL AND expires_at < now()
          AND (issuer_id = $1 OR subscriber_id = $1)
    `
	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to expire premium subscriptions", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindExpiredPremium(ctx context.Context, limit uint32) ([]domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE plan_type = 'PREMIUM' AND is_active = TRUE
          AND expires_at IS NOT NULL AND expires_at < now()
        ORDER BY expires_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get expired subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

func (r *Repository) ListBySubscriber(ctx context.Context, subscriberID int) ([]domain.Subscription, error) {
	return r.list(ctx, `subscriber_id`, subscriberID)
}

func (r *Repository) ListByIssuer(ctx context.Context, issuerID int) ([]domain.Subscription, error) {
	return r.list(ctx, `issuer_id`, issuerID)
}

func (r *Repository) list(ctx context.Context, column string, accountID int) ([]domain.Subscription, error) {
	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE ` + column + ` = $1 AND is_active = TRUE
        ORDER BY started_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

func (r *Repository) GetPricing(ctx context.Context, accountID int) (*domain.Pricing, error) {
	query := `
        SELECT id, account_id, amount, percentage_discount, last_update
        FROM pricings
        WHERE account_id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var pricing domain.Pricing
	err := row.Scan(&pricing.ID, &pricing.AccountID, &pricing.Amount, &pricing.PercentageDiscount, &pricing.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find pricing", zap.Error(err))
		return nil, err
	}
	return &pricing, nil
}

func (r *Repository) SavePricing(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error) {
	query := `
        INSERT INTO pricings (account_id, amount, percentage_discount, last_update)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (account_id) DO UPDATE
        SET amount = EXCLUDED.amount, percentage_discount = EXCLUDED.percentage_discount, last_update = EXCLUDED.last_update
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, pricing.AccountID, pricing.Amount,
		pricing.PercentageDiscount, pricing.LastUpdate).Scan(&pricing.ID)
	if err != nil {
		zap.L().Error("can't save pricing", zap.Error(err))
		return nil, err
	}
	return pricing, nil
}
