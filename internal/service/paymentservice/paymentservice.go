package paymentservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/ekarpova/taskhub/internal/processor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) error
	FindByMissionID(ctx context.Context, missionID string) (*domain.Payment, error)
	FindByIntentRef(ctx context.Context, intentRef string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error
	FindSucceededByProviderID(ctx context.Context, providerID string) ([]domain.Payment, error)
}

type MissionRepo interface {
	FindByID(ctx context.Context, missionID string) (*domain.Mission, error)
}

type Processor interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*processor.Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*processor.Intent, error)
}

type Service struct {
	paymentRepo    PaymentRepo
	missionRepo    MissionRepo
	processor      Processor
	commissionRate float64
	currency       string
}

func New(paymentRepo PaymentRepo, missionRepo MissionRepo, proc Processor, commissionRate float64, currency string) *Service {
	return &Service{
		paymentRepo:    paymentRepo,
		missionRepo:    missionRepo,
		processor:      proc,
		commissionRate: commissionRate,
		currency:       currency,
	}
}

var (
	ErrMissionNotFound     = errors.New("mission not found")
	ErrMissionNotCompleted = errors.New("mission must be completed before payment")
	ErrPaymentExists       = errors.New("payment already exists for this mission")
	ErrPaymentNotFound     = errors.New("payment not found")
)

// splitPrice computes the commission. The fee is rounded to cents so that
// fee + providerAmount always sums back to the price exactly.
func splitPrice(price, rate float64) (platformFee, providerAmount float64) {
	platformFee = math.Round(price*rate*100) / 100
	return platformFee, price - platformFee
}

// CreateIntent registers the charge with the processor and persists the
// PENDING payment row. The processor call happens first: a rejected intent
// leaves no row behind.
func (s *Service) CreateIntent(ctx context.Context, missionID string) (*domain.Payment, string, error) {
	mission, err := s.missionRepo.FindByID(ctx, missionID)
	if err != nil {
		return nil, "", err
	}
	if mission == nil {
		return nil, "", ErrMissionNotFound
	}
	if mission.Status != domain.MissionCompleted {
		return nil, "", ErrMissionNotCompleted
	}

	existing, err := s.paymentRepo.FindByMissionID(ctx, missionID)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrPaymentExists
	}

	platformFee, providerAmount := splitPrice(mission.Price, s.commissionRate)
	amountMinorUnits := int64(math.Round(mission.Price * 100))

	providerID := ""
	if mission.ProviderID != nil {
		providerID = *mission.ProviderID
	}
	intent, err := s.processor.CreateIntent(ctx, amountMinorUnits, s.currency, map[string]string{
		"missionId":  mission.ID,
		"clientId":   mission.ClientID,
		"providerId": providerID,
	})
	if err != nil {
		zap.L().Error("can't create payment intent: ", zap.Error(err))
		return nil, "", err
	}

	payment := &domain.Payment{
		ID:             uuid.NewString(),
		MissionID:      missionID,
		Amount:         mission.Price,
		PlatformFee:    platformFee,
		ProviderAmount: providerAmount,
		IntentRef:      intent.ID,
		Status:         domain.PaymentPending,
		CreatedAt:      time.Now(),
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		if pg.IsUniqueViolation(err) {
			zap.L().Info("lost payment creation race", zap.String("mission_id", missionID))
			return nil, "", ErrPaymentExists
		}
		zap.L().Error("can't save payment: ", zap.Error(err))
		return nil, "", err
	}

	return payment, intent.ClientSecret, nil
}

// Confirm re-reads the intent from the processor and settles the payment
// accordingly. The caller-supplied reference only selects the row; the
// processor's answer decides the status. Unknown statuses are a no-op so
// clients can poll.
func (s *Service) Confirm(ctx context.Context, intentRef string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByIntentRef(ctx, intentRef)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	intent, err := s.processor.RetrieveIntent(ctx, payment.IntentRef)
	if err != nil {
		zap.L().Error("can't retrieve payment intent: ", zap.Error(err))
		return nil, err
	}

	switch intent.Status {
	case processor.IntentSucceeded:
		if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentSucceeded); err != nil {
			return nil, err
		}
		payment.Status = domain.PaymentSucceeded
	case processor.IntentCanceled:
		if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentFailed); err != nil {
			return nil, err
		}
		payment.Status = domain.PaymentFailed
	default:
		zap.L().Info("payment intent still in flight",
			zap.String("intent_ref", intentRef), zap.String("status", intent.Status))
	}

	return payment, nil
}

func (s *Service) GetPaymentByMission(ctx context.Context, missionID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByMissionID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *Service) GetProviderEarnings(ctx context.Context, providerID string) ([]domain.Payment, float64, error) {
	payments, err := s.paymentRepo.FindSucceededByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("can't get provider earnings", zap.Error(err))
		return nil, 0, err
	}

	var totalEarnings float64
	for _, payment := range payments {
		totalEarnings += payment.ProviderAmount
	}
	return payments, totalEarnings, nil
}
