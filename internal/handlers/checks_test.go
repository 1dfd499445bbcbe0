package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlenaMolokova/canadasin/internal/constants"
	"github.com/AlenaMolokova/canadasin/internal/handlers"
	"github.com/AlenaMolokova/canadasin/internal/middleware"
	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/testutils"
	"github.com/AlenaMolokova/canadasin/internal/usecase"
	"github.com/AlenaMolokova/canadasin/internal/validation"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestCheckHandler(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		userID          int64
		storeErr        error
		expectStore     bool
		expectedStatus  int
		expectedOutcome string
		expectedKind    string
		expectedMasked  string
	}{
		{
			name:            "проверка SIN",
			body:            `{"number":"246-454-284"}`,
			userID:          1,
			expectStore:     true,
			expectedStatus:  http.StatusOK,
			expectedOutcome: constants.OutcomeValid,
			expectedKind:    "SIN",
			expectedMasked:  "***-***-284",
		},
		{
			name:            "проверка BN с ошибкой контрольной цифры",
			body:            `{"number":"846454280","kind":"bn"}`,
			userID:          1,
			expectStore:     true,
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedOutcome: constants.OutcomeInvalidChecksum,
			expectedKind:    "BN",
			expectedMasked:  "***-***-280",
		},
		{
			name:            "неверный формат тоже записывается",
			body:            `{"number":"84"}`,
			userID:          1,
			expectStore:     true,
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedOutcome: constants.OutcomeMalformed,
			expectedKind:    "SIN",
		},
		{
			name:           "ошибка хранилища",
			body:           `{"number":"246454284"}`,
			userID:         1,
			expectStore:    true,
			storeErr:       errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "неизвестный тип",
			body:           `{"number":"246454284","kind":"ssn"}`,
			userID:         1,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "без авторизации",
			body:           `{"number":"246454284"}`,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutils.MockCheckStorage{}
			var recorded models.Check
			if tt.expectStore {
				store.On("CreateCheck", mock.Anything, mock.AnythingOfType("models.Check")).
					Run(func(args mock.Arguments) { recorded = args.Get(1).(models.Check) }).
					Return(tt.storeErr)
			}
			uc := usecase.NewCheckUseCase(store, validation.NewSINValidator(nil))
			handler := handlers.NewCheckHandler(uc)

			req := httptest.NewRequest(http.MethodPost, "/api/user/checks", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.userID != 0 {
				req = withUser(req, tt.userID)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			store.AssertExpectations(t)
			if tt.expectedOutcome == "" {
				return
			}

			var resp handlers.ValidationResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, recorded.ID.String(), resp.ID)
			assert.Equal(t, tt.expectedOutcome, resp.Outcome)
			assert.Equal(t, tt.expectedOutcome, recorded.Outcome)
			assert.Equal(t, tt.expectedKind, recorded.Kind)
			assert.Equal(t, tt.expectedMasked, recorded.Masked)
			assert.Equal(t, tt.userID, recorded.UserID)
		})
	}
}

func TestChecksGetHandler(t *testing.T) {
	id := uuid.MustParse("0d7e5a0e-39f1-4b7e-a2d5-6a0f1f8e2c11")
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	t.Run("checks found", func(t *testing.T) {
		store := &testutils.MockCheckStorage{}
		store.On("GetChecksByUserID", mock.Anything, int64(1)).Return([]models.Check{{
			ID:        id,
			UserID:    1,
			Kind:      "SIN",
			Masked:    "***-***-284",
			Outcome:   constants.OutcomeValid,
			Class:     "Quebec",
			CheckedAt: pgtype.Timestamptz{Time: at, Valid: true},
		}}, nil)
		handler := handlers.NewChecksGetHandler(usecase.NewCheckUseCase(store, nil))

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/checks", nil), 1)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":"0d7e5a0e-39f1-4b7e-a2d5-6a0f1f8e2c11","kind":"SIN","number":"***-***-284",
			"outcome":"VALID","class":"Quebec","checked_at":"2026-10-19T09:30:00Z"}]`, w.Body.String())
	})

	t.Run("no checks", func(t *testing.T) {
		store := &testutils.MockCheckStorage{}
		store.On("GetChecksByUserID", mock.Anything, int64(2)).Return([]models.Check{}, nil)
		handler := handlers.NewChecksGetHandler(usecase.NewCheckUseCase(store, nil))

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/checks", nil), 2)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("internal_error", func(t *testing.T) {
		store := &testutils.MockCheckStorage{}
		store.On("GetChecksByUserID", mock.Anything, int64(3)).Return([]models.Check(nil), errors.New("DB down"))
		handler := handlers.NewChecksGetHandler(usecase.NewCheckUseCase(store, nil))

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/checks", nil), 3)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		handler := handlers.NewChecksGetHandler(usecase.NewCheckUseCase(&testutils.MockCheckStorage{}, nil))

		req := httptest.NewRequest(http.MethodGet, "/api/user/checks", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
