package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID, &payment.MissionID, &payment.Amount, &payment.PlatformFee,
		&payment.ProviderAmount, &payment.IntentRef, &payment.Status, &payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Save relies on the UNIQUE (mission_id) index for the one-payment-per-mission
// invariant; the unique violation surfaces to the service untouched.
func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (id, mission_id, amount, platform_fee, provider_amount, intent_ref, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			payment.ID, payment.MissionID, payment.Amount, payment.PlatformFee,
			payment.ProviderAmount, payment.IntentRef, payment.Status, payment.CreatedAt,
		)
		if err != nil {
			if !pg.IsUniqueViolation(err) {
				zap.L().Error("can't save payment", zap.Error(err))
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByMissionID(ctx context.Context, missionID string) (*domain.Payment, error) {
	query := `
        SELECT *
        FROM payments
        WHERE mission_id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, missionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by mission", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByIntentRef(ctx context.Context, intentRef string) (*domain.Payment, error) {
	query := `
        SELECT *
        FROM payments
        WHERE intent_ref = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, intentRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by intent ref", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	query := `
        UPDATE payments
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, paymentID)
		if err != nil {
			zap.L().Error("can't update payment status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindSucceededByProviderID(ctx context.Context, providerID string) ([]domain.Payment, error) {
	query := `
        SELECT p.*
        FROM payments p
        JOIN missions m ON m.id = p.mission_id
        WHERE m.provider_id = $1 AND p.status = 'SUCCEEDED'
        ORDER BY p.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't get provider payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

// FindPendingBefore feeds the reconciliation worker: PENDING payments whose
// confirm never arrived.
func (r *Repository) FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Payment, error) {
	query := `
        SELECT *
        FROM payments
        WHERE status = 'PENDING' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan pending payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}
