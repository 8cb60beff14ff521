package missionrepo

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

func scanMission(row pgx.Row) (*domain.Mission, error) {
	var mission domain.Mission
	err := row.Scan(
		&mission.ID, &mission.ClientID, &mission.ProviderID, &mission.Title,
		&mission.Description, &mission.Address, &mission.Latitude, &mission.Longitude,
		&mission.Price, &mission.Urgent, &mission.Status,
		&mission.AcceptedAt, &mission.CompletedAt, &mission.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *Repository) scanMissions(rows pgx.Rows) ([]domain.Mission, error) {
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		mission, err := scanMission(rows)
		if err != nil {
			zap.L().Error("can't scan mission row", zap.Error(err))
			return nil, err
		}
		missions = append(missions, *mission)
	}
	return missions, nil
}

func (r *Repository) Save(ctx context.Context, mission *domain.Mission) error {
	query := `
        INSERT INTO missions (id, client_id, title, description, address, latitude, longitude, price, urgent, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			mission.ID, mission.ClientID, mission.Title, mission.Description, mission.Address,
			mission.Latitude, mission.Longitude, mission.Price, mission.Urgent,
			mission.Status, mission.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save mission", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	query := `
        SELECT *
        FROM missions
        WHERE id = $1
    `
	mission, err := scanMission(r.db.QueryRow(ctx, query, missionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find mission", zap.Error(err))
		return nil, err
	}
	return mission, nil
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Mission, error) {
	query := `
        SELECT *
        FROM missions
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending missions", zap.Error(err))
		return nil, err
	}
	return r.scanMissions(rows)
}

func (r *Repository) FindByClientID(ctx context.Context, clientID string) ([]domain.Mission, error) {
	query := `
        SELECT *
        FROM missions
        WHERE client_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		zap.L().Error("can't get client missions", zap.Error(err))
		return nil, err
	}
	return r.scanMissions(rows)
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID string) ([]domain.Mission, error) {
	query := `
        SELECT *
        FROM missions
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't get provider missions", zap.Error(err))
		return nil, err
	}
	return r.scanMissions(rows)
}

// AcceptPending assigns the provider with a single conditional update so two
// racing providers cannot both win. Returns nil when the mission is no longer
// an unassigned PENDING one.
func (r *Repository) AcceptPending(ctx context.Context, missionID, providerID string, acceptedAt time.Time) (*domain.Mission, error) {
	query := `
        UPDATE missions
        SET provider_id = $1, status = $2, accepted_at = $3
        WHERE id = $4 AND status = $5 AND provider_id IS NULL
        RETURNING *
    `
	mission, err := scanMission(r.db.QueryRow(ctx, query,
		providerID, domain.MissionAccepted, acceptedAt, missionID, domain.MissionPending,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't accept mission", zap.Error(err))
		return nil, err
	}
	return mission, nil
}

// UpdateStatusFrom transitions status only when the row still holds the
// expected source status. Returns nil when a concurrent transition won.
func (r *Repository) UpdateStatusFrom(ctx context.Context, missionID string, from, to domain.MissionStatus, completedAt *time.Time) (*domain.Mission, error) {
	query := `
        UPDATE missions
        SET status = $1, completed_at = COALESCE($2, completed_at)
        WHERE id = $3 AND status = $4
        RETURNING *
    `
	mission, err := scanMission(r.db.QueryRow(ctx, query, to, completedAt, missionID, from))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update mission status", zap.Error(err))
		return nil, err
	}
	return mission, nil
}

func (r *Repository) CountByClientID(ctx context.Context, clientID string, status *domain.MissionStatus) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM missions
        WHERE client_id = $1 AND ($2::text IS NULL OR status = $2)
    `
	var count int
	if err := r.db.QueryRow(ctx, query, clientID, status).Scan(&count); err != nil {
		zap.L().Error("can't count client missions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountByProviderID(ctx context.Context, providerID string, status *domain.MissionStatus) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM missions
        WHERE provider_id = $1 AND ($2::text IS NULL OR status = $2)
    `
	var count int
	if err := r.db.QueryRow(ctx, query, providerID, status).Scan(&count); err != nil {
		zap.L().Error("can't count provider missions", zap.Error(err))
		return 0, err
	}
	return count, nil
}
