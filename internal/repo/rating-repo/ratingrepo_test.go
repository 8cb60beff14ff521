package ratingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var ratingColumns = []string{"id", "mission_id", "client_id", "provider_id", "score", "comment", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	return repo, mockDB, mockTxManager
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	query := `
        INSERT INTO ratings (id, mission_id, client_id, provider_id, score, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	comment := "great work"
	timeNow := time.Now()
	rating := &domain.Rating{
		ID:         "r-1",
		MissionID:  "m-1",
		ClientID:   "c-1",
		ProviderID: "p-1",
		Score:      5,
		Comment:    &comment,
		CreatedAt:  timeNow,
	}

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     bool
		uniqueError bool
	}{
		{
			name: "Rating saved",
			prepareMock: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						mock.ExpectExec(regexp.QuoteMeta(query)).
							WithArgs("r-1", "m-1", "c-1", "p-1", 5, &comment, timeNow).
							WillReturnResult(pgxmock.NewResult("INSERT", 1))
						return fn(ctx)
					})
			},
			wantErr: false,
		},
		{
			name: "Duplicate rating for mission",
			prepareMock: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						mock.ExpectExec(regexp.QuoteMeta(query)).
							WithArgs("r-1", "m-1", "c-1", "p-1", 5, &comment, timeNow).
							WillReturnError(&pgconn.PgError{Code: "23505"})
						return fn(ctx)
					})
			},
			wantErr:     true,
			uniqueError: true,
		},
		{
			name: "Database error",
			prepareMock: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						mock.ExpectExec(regexp.QuoteMeta(query)).
							WithArgs("r-1", "m-1", "c-1", "p-1", 5, &comment, timeNow).
							WillReturnError(errors.New("db error"))
						return fn(ctx)
					})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := repo.Save(ctx, rating)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.uniqueError, pg.IsUniqueViolation(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByMissionID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	query := `
        SELECT *
        FROM ratings
        WHERE mission_id = $1
    `
	comment := "great work"
	timeNow := time.Now()

	tests := []struct {
		name        string
		prepareMock func()
		want        *domain.Rating
		wantErr     bool
	}{
		{
			name: "Rating found",
			prepareMock: func() {
				rows := pgxmock.NewRows(ratingColumns).
					AddRow("r-1", "m-1", "c-1", "p-1", 5, &comment, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("m-1").WillReturnRows(rows)
			},
			want: &domain.Rating{
				ID: "r-1", MissionID: "m-1", ClientID: "c-1", ProviderID: "p-1",
				Score: 5, Comment: &comment, CreatedAt: timeNow,
			},
		},
		{
			name: "No rating yet",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("m-1").WillReturnError(pgx.ErrNoRows)
			},
			want: nil,
		},
		{
			name: "Database error",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("m-1").WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rating, err := repo.FindByMissionID(ctx, "m-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, rating)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByProviderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	defer mock.Close()
	ctx := context.Background()

	query := `
        SELECT *
        FROM ratings
        WHERE provider_id = $1
        ORDER BY created_at DESC
    `
	timeNow := time.Now()

	tests := []struct {
		name        string
		prepareMock func()
		wantLen     int
		wantErr     bool
	}{
		{
			name: "Ratings found",
			prepareMock: func() {
				rows := pgxmock.NewRows(ratingColumns).
					AddRow("r-2", "m-2", "c-2", "p-1", 4, (*string)(nil), timeNow).
					AddRow("r-1", "m-1", "c-1", "p-1", 5, (*string)(nil), timeNow.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("p-1").WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "No ratings",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("p-1").
					WillReturnRows(pgxmock.NewRows(ratingColumns))
			},
			wantLen: 0,
		},
		{
			name: "Database error",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("p-1").WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ratings, err := repo.FindByProviderID(ctx, "p-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, ratings, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
