package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		message        string
		expectedBody   string
		expectedStatus int
	}{
		{
			name:           "bad request",
			status:         http.StatusBadRequest,
			message:        "bad request",
			expectedBody:   `{"error":"bad request"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unprocessable",
			status:         http.StatusUnprocessableEntity,
			message:        "invalid checksum",
			expectedBody:   `{"error":"invalid checksum"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			err := WriteJSONError(w, tt.status, tt.message)

			assert.NoError(t, err, "WriteJSONError should not return an error")
			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "Content-Type header mismatch")
			assert.JSONEq(t, tt.expectedBody, w.Body.String(), "Response body mismatch")
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(w, http.StatusOK, []string{"046-454-286"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["046-454-286"]`, w.Body.String())
}

func TestWriteJSONUnencodable(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Error(t, err)
}
