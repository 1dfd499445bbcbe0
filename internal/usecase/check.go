package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/sin"
	"github.com/AlenaMolokova/canadasin/internal/validation"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CheckStorage interface {
	CreateCheck(ctx context.Context, check models.Check) error
	GetChecksByUserID(ctx context.Context, userID int64) ([]models.Check, error)
}

type CheckUseCase struct {
	storage   CheckStorage
	validator validation.NumberValidator
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewCheckUseCase(storage CheckStorage, validator validation.NumberValidator) *CheckUseCase {
	return &CheckUseCase{
		storage:   storage,
		validator: validator,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// Check validates raw and records the outcome for userID. Invalid numbers
// are recorded too; only storage failures return an error.
func (uc *CheckUseCase) Check(ctx context.Context, userID int64, raw string, kind sin.Kind) (validation.Result, models.Check, error) {
	res := uc.validator.Validate(raw, kind)

	check := models.Check{
		ID:        uc.newID(),
		UserID:    userID,
		Kind:      kind.String(),
		Masked:    res.Masked(),
		Outcome:   res.Outcome,
		CheckedAt: pgtype.Timestamptz{Time: uc.now(), Valid: true},
	}
	if c := res.Class(); c != nil {
		check.Class = c.String()
	}

	if err := uc.storage.CreateCheck(ctx, check); err != nil {
		return res, models.Check{}, fmt.Errorf("failed to record check: %w", err)
	}
	return res, check, nil
}

func (uc *CheckUseCase) GetUserChecks(ctx context.Context, userID int64) ([]models.Check, error) {
	checks, err := uc.storage.GetChecksByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checks: %w", err)
	}
	return checks, nil
}
