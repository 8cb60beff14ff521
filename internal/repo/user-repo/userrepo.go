package userrepo

import (
	"context"
	"errors"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Phone, &user.Role, &user.IsAvailable, &user.IsBlocked,
		&user.Latitude, &user.Longitude, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, is_available, is_blocked, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING *
    `
	row := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.Role, user.IsAvailable, user.IsBlocked, user.CreatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT *
        FROM users
        WHERE email = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT *
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateLocation(ctx context.Context, userID string, latitude, longitude float64) (*domain.User, error) {
	query := `
        UPDATE users
        SET latitude = $1, longitude = $2
        WHERE id = $3
        RETURNING *
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, latitude, longitude, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update user location", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateAvailability(ctx context.Context, userID string, isAvailable bool) (*domain.User, error) {
	query := `
        UPDATE users
        SET is_available = $1
        WHERE id = $2
        RETURNING *
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, isAvailable, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update user availability", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) SetBlocked(ctx context.Context, userID string, isBlocked bool) (*domain.User, error) {
	query := `
        UPDATE users
        SET is_blocked = $1
        WHERE id = $2
        RETURNING *
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, isBlocked, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't set user blocked flag", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Delete(ctx context.Context, userID string) error {
	query := `
        DELETE FROM users
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}
