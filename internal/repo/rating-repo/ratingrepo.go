package ratingrepo

import (
	"context"
	"errors"

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

func scanRating(row pgx.Row) (*domain.Rating, error) {
	var rating domain.Rating
	err := row.Scan(
		&rating.ID, &rating.MissionID, &rating.ClientID, &rating.ProviderID,
		&rating.Score, &rating.Comment, &rating.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Save relies on the UNIQUE (mission_id) index for the one-rating-per-mission
// invariant.
func (r *Repository) Save(ctx context.Context, rating *domain.Rating) error {
	query := `
        INSERT INTO ratings (id, mission_id, client_id, provider_id, score, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			rating.ID, rating.MissionID, rating.ClientID, rating.ProviderID,
			rating.Score, rating.Comment, rating.CreatedAt,
		)
		if err != nil {
			if !pg.IsUniqueViolation(err) {
				zap.L().Error("can't save rating", zap.Error(err))
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

func (r *Repository) FindByMissionID(ctx context.Context, missionID string) (*domain.Rating, error) {
	query := `
        SELECT *
        FROM ratings
        WHERE mission_id = $1
    `
	rating, err := scanRating(r.db.QueryRow(ctx, query, missionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rating by mission", zap.Error(err))
		return nil, err
	}
	return rating, nil
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID string) ([]domain.Rating, error) {
	query := `
        SELECT *
        FROM ratings
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("can't get provider ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, *rating)
	}
	return ratings, nil
}
