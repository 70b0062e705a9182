package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/services"
	mem "tripsmith/pkg/memcache"
	"tripsmith/pkg/middleware"
	"tripsmith/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTripRouter(svc services.TripPlannerServiceInterface, store mem.InFlightStore) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	ctrl := NewTripController(svc, store, time.Minute, zap.NewNop())
	r.POST("/trips/plan", ctrl.PlanTrip)
	return r
}

func postPlan(r http.Handler, body, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/trips/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTripController_PlanTrip_Success(t *testing.T) {
	svc := new(MockTripPlannerService)
	store := mem.NewInFlight()
	result := &response_models.TripPlanResult{
		ResolvedDestinations: []string{"Matara"},
		SpotsFound:           3,
		Plan: response_models.TravelPlan{
			Summary:   "Two days",
			Itinerary: []response_models.TripItineraryItem{{Day: 1, Location: "Matara Fort", ImageURL: "fort.jpg"}},
		},
	}
	svc.On("PlanTrip", mock.Anything, services.PlanTripInput{Budget: "500", Destinations: "Mathara", Days: "2"}).
		Return(result, nil).Once()

	w := postPlan(newTripRouter(svc, store), `{"budget":"500","destinations":"Mathara","days":"2"}`, "abc")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status  string                         `json:"status"`
		TraceID string                         `json:"trace_id"`
		Data    response_models.TripPlanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.NotEmpty(t, body.TraceID)
	assert.Equal(t, *result, body.Data)
	assert.False(t, store.Held("session:abc"), "claim is released after the request")
	svc.AssertExpectations(t)
}

func TestTripController_PlanTrip_BadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"not json":        `budget=1`,
		"missing days":    `{"budget":"500","destinations":"Galle"}`,
		"non numeric day": `{"budget":"500","destinations":"Galle","days":"two"}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := new(MockTripPlannerService)

			w := postPlan(newTripRouter(svc, mem.NewInFlight()), body, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "PlanTrip", mock.Anything, mock.Anything)
		})
	}
}

func TestTripController_PlanTrip_ServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{utils.ErrNoSpotsFound, http.StatusNotFound},
		{utils.ErrPlanGenerationFailed, http.StatusBadGateway},
		{utils.ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := new(MockTripPlannerService)
			store := mem.NewInFlight()
			svc.On("PlanTrip", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := postPlan(newTripRouter(svc, store), `{"budget":"1","destinations":"Galle","days":"1"}`, "s1")

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, store.Held("session:s1"))
		})
	}
}

func TestTripController_PlanTrip_RejectsConcurrentRequestForSameSession(t *testing.T) {
	svc := new(MockTripPlannerService)
	store := mem.NewInFlight()
	_, ok := store.TryAcquire("session:busy", time.Minute)
	require.True(t, ok)

	w := postPlan(newTripRouter(svc, store), `{"budget":"1","destinations":"Galle","days":"1"}`, "busy")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, store.Held("session:busy"), "a rejected request must not free the running claim")
	svc.AssertNotCalled(t, "PlanTrip", mock.Anything, mock.Anything)

	svc.On("PlanTrip", mock.Anything, mock.Anything).Return(&response_models.TripPlanResult{}, nil).Once()
	w = postPlan(newTripRouter(svc, store), `{"budget":"1","destinations":"Galle","days":"1"}`, "other")
	assert.Equal(t, http.StatusOK, w.Code, "other sessions are not blocked")
}
