package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlenaMolokova/canadasin/internal/metrics"
	"github.com/AlenaMolokova/canadasin/internal/middleware"
	"github.com/AlenaMolokova/canadasin/internal/models"
	"github.com/AlenaMolokova/canadasin/internal/testutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testStore struct {
	*testutils.MockUserStorage
	*testutils.MockCheckStorage
}

func newTestRouter(t *testing.T) (http.Handler, *testStore) {
	t.Helper()
	store := &testStore{&testutils.MockUserStorage{}, &testutils.MockCheckStorage{}}
	reg := prometheus.NewRegistry()
	r := SetupRoutes(Deps{
		Store:          store,
		JWTSecret:      "test-secret",
		GenerateLimit:  5,
		Metrics:        metrics.New(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	return r, store
}

func TestPublicRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "sin validate", method: http.MethodPost, path: SINValidatePath, body: "046-454-286", expectedStatus: http.StatusOK},
		{name: "bn validate", method: http.MethodPost, path: BNValidatePath, body: "846454280", expectedStatus: http.StatusUnprocessableEntity},
		{name: "generate", method: http.MethodGet, path: GeneratePath + "?count=5", expectedStatus: http.StatusOK},
		{name: "wrong method", method: http.MethodGet, path: SINValidatePath, expectedStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/api/ssn/validate", expectedStatus: http.StatusNotFound},
		{name: "checks need auth", method: http.MethodGet, path: UserPrefix + ChecksPath, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, SINValidatePath, strings.NewReader("046454286"))
	r.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `canadasin_validations_total{kind="SIN",outcome="UNASSIGNED"} 1`)
}

func TestAuthorizedChecksRoute(t *testing.T) {
	r, store := newTestRouter(t)
	store.MockCheckStorage.On("GetChecksByUserID", mock.Anything, int64(42)).Return([]models.Check{}, nil)

	token, err := middleware.IssueToken("test-secret", 42, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, UserPrefix+ChecksPath, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	store.MockCheckStorage.AssertExpectations(t)
}
