// Package paymentsync reconciles payments stuck in PENDING with the
// processor. Clients are supposed to call the confirm endpoint after paying,
// but abandoned checkouts and crashed apps never do.
package paymentsync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// gracePeriod keeps freshly created intents out of the sweep while the
// client-side confirmation is still in flight.
const gracePeriod = 5 * time.Minute

var processingPayments sync.Map

type Repo interface {
	FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Payment, error)
}

type Confirmer interface {
	Confirm(ctx context.Context, intentRef string) (*domain.Payment, error)
}

type Service struct {
	repo           Repo
	confirmer      Confirmer
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(repo Repo, confirmer Confirmer, updateInterval time.Duration) *Service {
	return &Service{
		repo:           repo,
		confirmer:      confirmer,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: updateInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment sync service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payment sync")
			return
		case <-ticker.C:
			s.processPayments(ctx)
		}
	}
}

func (s *Service) processPayments(ctx context.Context) {
	cutoff := time.Now().Add(-gracePeriod)
	payments, err := s.repo.FindPendingBefore(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		payment := payment

		if _, loaded := processingPayments.LoadOrStore(payment.IntentRef, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayments.Delete(payment.IntentRef)
				return s.syncPayment(ctx, payment)
			})
			if err != nil {
				processingPayments.Delete(payment.IntentRef)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing payments", zap.Error(err))
	}
}

func (s *Service) syncPayment(ctx context.Context, payment domain.Payment) error {
	updated, err := s.confirmer.Confirm(ctx, payment.IntentRef)
	if err != nil {
		return err
	}
	if updated.Status != domain.PaymentPending {
		zap.L().Info("Payment settled by sync",
			zap.String("intent_ref", payment.IntentRef),
			zap.String("status", string(updated.Status)))
	}
	return nil
}
