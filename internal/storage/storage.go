package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrLoginExists  = errors.New("login already exists")
	ErrUserNotFound = errors.New("user not found")
)

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the storage needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db DB
}

func NewStorage(db DB) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

const createUserSQL = `INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`

func (s *Storage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, createUserSQL, login, password).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrLoginExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

const getUserByLoginSQL = `SELECT id, login, password FROM users WHERE login = $1`

func (s *Storage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, getUserByLoginSQL, login).Scan(&u.ID, &u.Login, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

const createCheckSQL = `INSERT INTO checks (id, user_id, kind, masked, outcome, class, checked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (s *Storage) CreateCheck(ctx context.Context, check models.Check) error {
	_, err := s.db.Exec(ctx, createCheckSQL,
		check.ID.String(),
		check.UserID,
		check.Kind,
		check.Masked,
		check.Outcome,
		check.Class,
		check.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create check: %w", err)
	}
	return nil
}

const getChecksByUserSQL = `SELECT id::text, kind, masked, outcome, class, checked_at
FROM checks WHERE user_id = $1 ORDER BY checked_at DESC`

func (s *Storage) GetChecksByUserID(ctx context.Context, userID int64) ([]models.Check, error) {
	rows, err := s.db.Query(ctx, getChecksByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	var checks []models.Check
	for rows.Next() {
		var (
			id string
			c  models.Check
		)
		if err := rows.Scan(&id, &c.Kind, &c.Masked, &c.Outcome, &c.Class, &c.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		c.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse check id %q: %w", id, err)
		}
		c.UserID = userID
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	return checks, nil
}
