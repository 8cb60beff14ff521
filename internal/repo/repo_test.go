package repo

import (
	"testing"

	"github.com/ekarpova/taskhub/internal/pg"
	adminrepo "github.com/ekarpova/taskhub/internal/repo/admin-repo"
	messagerepo "github.com/ekarpova/taskhub/internal/repo/message-repo"
	missionrepo "github.com/ekarpova/taskhub/internal/repo/mission-repo"
	paymentrepo "github.com/ekarpova/taskhub/internal/repo/payment-repo"
	ratingrepo "github.com/ekarpova/taskhub/internal/repo/rating-repo"
	userrepo "github.com/ekarpova/taskhub/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.MissionRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.RatingRepo)
	assert.NotNil(t, repo.MessageRepo)
	assert.NotNil(t, repo.AdminRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &missionrepo.Repository{}, repo.MissionRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &ratingrepo.Repository{}, repo.RatingRepo)
	assert.IsType(t, &messagerepo.Repository{}, repo.MessageRepo)
	assert.IsType(t, &adminrepo.Repository{}, repo.AdminRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
