package messagerepo

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

func (r *Repository) Save(ctx context.Context, message *domain.Message) error {
	query := `
        INSERT INTO messages (id, mission_id, sender_id, receiver_id, content, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		message.ID, message.MissionID, message.SenderID, message.ReceiverID,
		message.Content, message.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save message", zap.Error(err))
		return err
	}
	return nil
}

// FindByMissionID returns the mission chat oldest first; clients poll this.
func (r *Repository) FindByMissionID(ctx context.Context, missionID string) ([]domain.Message, error) {
	query := `
        SELECT *
        FROM messages
        WHERE mission_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, missionID)
	if err != nil {
		zap.L().Error("can't get messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var message domain.Message
		err := rows.Scan(
			&message.ID, &message.MissionID, &message.SenderID, &message.ReceiverID,
			&message.Content, &message.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}
