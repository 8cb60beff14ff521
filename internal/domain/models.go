package domain

import "time"

type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Phone        string    `db:"phone"`
	Role         Role      `db:"role"`
	IsAvailable  bool      `db:"is_available"`
	IsBlocked    bool      `db:"is_blocked"`
	Latitude     *float64  `db:"latitude"`
	Longitude    *float64  `db:"longitude"`
	CreatedAt    time.Time `db:"created_at"`
}

type Mission struct {
	ID          string        `db:"id"`
	ClientID    string        `db:"client_id"`
	ProviderID  *string       `db:"provider_id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Address     string        `db:"address"`
	Latitude    float64       `db:"latitude"`
	Longitude   float64       `db:"longitude"`
	Price       float64       `db:"price"`
	Urgent      bool          `db:"urgent"`
	Status      MissionStatus `db:"status"`
	AcceptedAt  *time.Time    `db:"accepted_at"`
	CompletedAt *time.Time    `db:"completed_at"`
	CreatedAt   time.Time     `db:"created_at"`
}

type Payment struct {
	ID             string        `db:"id"`
	MissionID      string        `db:"mission_id"`
	Amount         float64       `db:"amount"`
	PlatformFee    float64       `db:"platform_fee"`
	ProviderAmount float64       `db:"provider_amount"`
	IntentRef      string        `db:"intent_ref"`
	Status         PaymentStatus `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
}

type Rating struct {
	ID         string    `db:"id"`
	MissionID  string    `db:"mission_id"`
	ClientID   string    `db:"client_id"`
	ProviderID string    `db:"provider_id"`
	Score      int       `db:"score"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

type Message struct {
	ID         string    `db:"id"`
	MissionID  string    `db:"mission_id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}
