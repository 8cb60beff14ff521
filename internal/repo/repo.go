package repo

import (
	"github.com/ekarpova/taskhub/internal/pg"
	adminrepo "github.com/ekarpova/taskhub/internal/repo/admin-repo"
	messagerepo "github.com/ekarpova/taskhub/internal/repo/message-repo"
	missionrepo "github.com/ekarpova/taskhub/internal/repo/mission-repo"
	paymentrepo "github.com/ekarpova/taskhub/internal/repo/payment-repo"
	ratingrepo "github.com/ekarpova/taskhub/internal/repo/rating-repo"
	userrepo "github.com/ekarpova/taskhub/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	MissionRepo *missionrepo.Repository
	PaymentRepo *paymentrepo.Repository
	RatingRepo  *ratingrepo.Repository
	MessageRepo *messagerepo.Repository
	AdminRepo   *adminrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		MissionRepo: missionrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn, txManager),
		RatingRepo:  ratingrepo.New(conn, txManager),
		MessageRepo: messagerepo.New(conn),
		AdminRepo:   adminrepo.New(conn),
	}
}
