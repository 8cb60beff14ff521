package adminrepo

import (
	"context"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// GetPlatformStats gathers the dashboard counters in one round trip.
func (r *Repository) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users),
            (SELECT COUNT(*) FROM users WHERE role = 'CLIENT'),
            (SELECT COUNT(*) FROM users WHERE role = 'PROVIDER'),
            (SELECT COUNT(*) FROM users WHERE role = 'PROVIDER' AND is_available),
            (SELECT COUNT(*) FROM missions),
            (SELECT COUNT(*) FROM missions WHERE status = 'PENDING'),
            (SELECT COUNT(*) FROM missions WHERE status IN ('ACCEPTED', 'IN_PROGRESS')),
            (SELECT COUNT(*) FROM missions WHERE status = 'COMPLETED'),
            (SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'SUCCEEDED'),
            (SELECT COALESCE(SUM(platform_fee), 0) FROM payments WHERE status = 'SUCCEEDED')
    `
	var stats domain.PlatformStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers, &stats.Clients, &stats.Providers, &stats.AvailableProviders,
		&stats.TotalMissions, &stats.PendingMissions, &stats.ActiveMissions, &stats.CompletedMissions,
		&stats.TotalRevenue, &stats.PlatformRevenue,
	)
	if err != nil {
		zap.L().Error("can't get platform stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	query := `
        SELECT *, COUNT(*) OVER()
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	var total int
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
			&user.Phone, &user.Role, &user.IsAvailable, &user.IsBlocked,
			&user.Latitude, &user.Longitude, &user.CreatedAt, &total,
		)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, 0, err
		}
		users = append(users, user)
	}
	if total == 0 {
		total, err = r.count(ctx, "users")
		if err != nil {
			return nil, 0, err
		}
	}
	return users, total, nil
}

func (r *Repository) ListMissions(ctx context.Context, limit, offset int) ([]domain.Mission, int, error) {
	query := `
        SELECT *, COUNT(*) OVER()
        FROM missions
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list missions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var missions []domain.Mission
	var total int
	for rows.Next() {
		var mission domain.Mission
		err := rows.Scan(
			&mission.ID, &mission.ClientID, &mission.ProviderID, &mission.Title,
			&mission.Description, &mission.Address, &mission.Latitude, &mission.Longitude,
			&mission.Price, &mission.Urgent, &mission.Status,
			&mission.AcceptedAt, &mission.CompletedAt, &mission.CreatedAt, &total,
		)
		if err != nil {
			zap.L().Error("can't scan mission row", zap.Error(err))
			return nil, 0, err
		}
		missions = append(missions, mission)
	}
	if total == 0 {
		total, err = r.count(ctx, "missions")
		if err != nil {
			return nil, 0, err
		}
	}
	return missions, total, nil
}

func (r *Repository) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int, error) {
	query := `
        SELECT *, COUNT(*) OVER()
        FROM payments
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	var total int
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID, &payment.MissionID, &payment.Amount, &payment.PlatformFee,
			&payment.ProviderAmount, &payment.IntentRef, &payment.Status, &payment.CreatedAt, &total,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	if total == 0 {
		total, err = r.count(ctx, "payments")
		if err != nil {
			return nil, 0, err
		}
	}
	return payments, total, nil
}

// count covers the empty-page case, where COUNT(*) OVER() returns no rows.
func (r *Repository) count(ctx context.Context, table string) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&total); err != nil {
		zap.L().Error("can't count rows", zap.Error(err))
		return 0, err
	}
	return total, nil
}
