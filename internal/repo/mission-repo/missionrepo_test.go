package missionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var missionColumns = []string{
	"id", "client_id", "provider_id", "title", "description", "address",
	"latitude", "longitude", "price", "urgent", "status",
	"accepted_at", "completed_at", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func missionRow(rows *pgxmock.Rows, mission domain.Mission) *pgxmock.Rows {
	return rows.AddRow(
		mission.ID, mission.ClientID, mission.ProviderID, mission.Title,
		mission.Description, mission.Address, mission.Latitude, mission.Longitude,
		mission.Price, mission.Urgent, mission.Status,
		mission.AcceptedAt, mission.CompletedAt, mission.CreatedAt,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `
        SELECT *
        FROM missions
        WHERE id = $1
    `

	mission := domain.Mission{
		ID:          "m-1",
		ClientID:    "c-1",
		Title:       "Assemble wardrobe",
		Description: "Two-door wardrobe, tools provided",
		Address:     "Keizersgracht 100, Amsterdam",
		Latitude:    52.3676,
		Longitude:   4.9041,
		Price:       60,
		Status:      domain.MissionPending,
		CreatedAt:   timeNow,
	}

	tests := []struct {
		name      string
		missionID string
		mockSetup func()
		expectErr bool
		result    *domain.Mission
	}{
		{
			name:      "Mission exists",
			missionID: "m-1",
			mockSetup: func() {
				rows := missionRow(pgxmock.NewRows(missionColumns), mission)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("m-1").
					WillReturnRows(rows)
			},
			result: &mission,
		},
		{
			name:      "Mission does not exist",
			missionID: "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			missionID: "m-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("m-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.missionID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	query := `
        INSERT INTO missions (id, client_id, title, description, address, latitude, longitude, price, urgent, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `

	mission := &domain.Mission{
		ID:          "m-1",
		ClientID:    "c-1",
		Title:       "Assemble wardrobe",
		Description: "Two-door wardrobe",
		Address:     "Keizersgracht 100, Amsterdam",
		Latitude:    52.3676,
		Longitude:   4.9041,
		Price:       60,
		Urgent:      true,
		Status:      domain.MissionPending,
		CreatedAt:   timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save mission successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(
							"m-1", "c-1", "Assemble wardrobe", "Two-door wardrobe",
							"Keizersgracht 100, Amsterdam", 52.3676, 4.9041, 60.0,
							true, domain.MissionPending, timeNow,
						).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(
							"m-1", "c-1", "Assemble wardrobe", "Two-door wardrobe",
							"Keizersgracht 100, Amsterdam", 52.3676, 4.9041, 60.0,
							true, domain.MissionPending, timeNow,
						).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), mission)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AcceptPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `
        UPDATE missions
        SET provider_id = $1, status = $2, accepted_at = $3
        WHERE id = $4 AND status = $5 AND provider_id IS NULL
        RETURNING *
    `

	providerID := "p-1"
	accepted := domain.Mission{
		ID:         "m-1",
		ClientID:   "c-1",
		ProviderID: &providerID,
		Title:      "Assemble wardrobe",
		Status:     domain.MissionAccepted,
		AcceptedAt: &timeNow,
		CreatedAt:  timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Mission
	}{
		{
			name: "Provider wins the mission",
			mockSetup: func() {
				rows := missionRow(pgxmock.NewRows(missionColumns), accepted)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1", domain.MissionAccepted, timeNow, "m-1", domain.MissionPending).
					WillReturnRows(rows)
			},
			result: &accepted,
		},
		{
			name: "Mission already taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1", domain.MissionAccepted, timeNow, "m-1", domain.MissionPending).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("p-1", domain.MissionAccepted, timeNow, "m-1", domain.MissionPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AcceptPending(context.Background(), "m-1", "p-1", timeNow)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateStatusFrom(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `
        UPDATE missions
        SET status = $1, completed_at = COALESCE($2, completed_at)
        WHERE id = $3 AND status = $4
        RETURNING *
    `

	providerID := "p-1"
	completed := domain.Mission{
		ID:          "m-1",
		ClientID:    "c-1",
		ProviderID:  &providerID,
		Title:       "Assemble wardrobe",
		Status:      domain.MissionCompleted,
		CompletedAt: &timeNow,
		CreatedAt:   timeNow,
	}

	t.Run("Transition applied", func(t *testing.T) {
		rows := missionRow(pgxmock.NewRows(missionColumns), completed)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(domain.MissionCompleted, &timeNow, "m-1", domain.MissionInProgress).
			WillReturnRows(rows)

		result, err := repo.UpdateStatusFrom(context.Background(), "m-1", domain.MissionInProgress, domain.MissionCompleted, &timeNow)
		assert.NoError(t, err)
		assert.Equal(t, &completed, result)
	})

	t.Run("Concurrent transition won", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(domain.MissionInProgress, (*time.Time)(nil), "m-1", domain.MissionAccepted).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.UpdateStatusFrom(context.Background(), "m-1", domain.MissionAccepted, domain.MissionInProgress, nil)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `
        SELECT *
        FROM missions
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Missions found",
			mockSetup: func() {
				rows := pgxmock.NewRows(missionColumns)
				rows = missionRow(rows, domain.Mission{ID: "m-1", ClientID: "c-1", Status: domain.MissionPending, CreatedAt: timeNow})
				rows = missionRow(rows, domain.Mission{ID: "m-2", ClientID: "c-2", Status: domain.MissionPending, CreatedAt: timeNow})
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No missions",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnRows(pgxmock.NewRows(missionColumns))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPending(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_CountByProviderID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `
        SELECT COUNT(*)
        FROM missions
        WHERE provider_id = $1 AND ($2::text IS NULL OR status = $2)
    `

	t.Run("Count with status filter", func(t *testing.T) {
		completed := domain.MissionCompleted
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("p-1", &completed).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountByProviderID(context.Background(), "p-1", &completed)
		assert.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("Count without filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("p-1", (*domain.MissionStatus)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(9))

		count, err := repo.CountByProviderID(context.Background(), "p-1", nil)
		assert.NoError(t, err)
		assert.Equal(t, 9, count)
	})
}
