package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID       int64
	Login    string
	Password string
}

// Check is one recorded validation. Masked never holds more than the last
// three digits of the number.
type Check struct {
	ID        uuid.UUID
	UserID    int64
	Kind      string
	Masked    string
	Outcome   string
	Class     string
	CheckedAt pgtype.Timestamptz
}

type CheckStorage interface {
	CreateCheck(ctx context.Context, check Check) error
	GetChecksByUserID(ctx context.Context, userID int64) ([]Check, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, login, password string) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (User, error)
}
