// Package sweeper periodically deactivates lapsed premium subscriptions.
// The lazy sync before list reads already keeps responses consistent; the
// sweeper keeps the stored rows from rotting between reads.
package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spatocode/capperhub/internal/config"
	"github.com/spatocode/capperhub/internal/domain"
	"github.com/spatocode/capperhub/internal/events"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SubscriptionRepo interface {
	FindExpiredPremium(ctx context.Context, limit uint32) ([]domain.Subscription, error)
	Deactivate(ctx context.Context, subscriptionID int) error
}

var processingSubscriptions sync.Map

type Service struct {
	repo          SubscriptionRepo
	emitter       events.Emitter
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, repo SubscriptionRepo, emitter events.Emitter) *Service {
	return &Service{
		repo:          repo,
		emitter:       emitter,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Subscription sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.processExpirations(ctx)
		}
	}
}

func (s *Service) processExpirations(ctx context.Context) {
	subs, err := s.repo.FindExpiredPremium(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired subscriptions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, sub := range subs {
		sub := sub

		if _, loaded := processingSubscriptions.LoadOrStore(sub.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingSubscriptions.Delete(sub.ID)
				return s.handleExpiration(ctx, sub)
			})
			if err != nil {
				processingSubscriptions.Delete(sub.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing expirations", zap.Error(err))
	}
}

func (s *Service) handleExpiration(ctx context.Context, sub domain.Subscription) error {
	if err := s.repo.Deactivate(ctx, sub.ID); err != nil {
		return err
	}

	sub.IsActive = false
	zap.L().Info("Premium subscription expired",
		zap.Int("subscriptionID", sub.ID),
		zap.Int("issuerID", sub.IssuerID),
		zap.Int("subscriberID", sub.SubscriberID))
	s.emitter.Emit(events.Event{Type: events.EventSubscriptionExpired, Payload: sub})
	return nil
}
