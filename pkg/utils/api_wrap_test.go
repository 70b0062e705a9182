package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: days missing", ErrInvalidInput), http.StatusBadRequest},
		{ErrNoSpotsFound, http.StatusNotFound},
		{ErrSpotNotFound, http.StatusNotFound},
		{ErrRequestInFlight, http.StatusConflict},
		{fmt.Errorf("%w: bad json", ErrPlanGenerationFailed), http.StatusBadGateway},
		{fmt.Errorf("%w: timeout", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, "trace-1", body.TraceID)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandleServiceError_NoDataMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleServiceError(c, zap.NewNop(), ErrNoSpotsFound)

	assert.Contains(t, w.Body.String(), "No places found")
}
