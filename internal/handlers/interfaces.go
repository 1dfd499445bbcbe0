package handlers

import (
	"context"

	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/validation"
)

type CheckUseCase interface {
	Check(ctx context.Context, userID int64, raw string, kind sin.Kind) (validation.Result, models.Check, error)
	GetUserChecks(ctx context.Context, userID int64) ([]models.Check, error)
}

type UserCounter interface {
	IncrementUsersCreated()
}
