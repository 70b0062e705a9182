package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"tripsmith/internal/models/response_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

func newSpotsRouter(svc services.SpotServiceInterface) *gin.Engine {
	r := gin.New()
	ctrl := NewSpotsController(svc, zap.NewNop())
	r.GET("/spots", ctrl.ListSpots)
	r.GET("/spots/:id", ctrl.GetSpot)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSpotsController_ListSpots(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		svc := new(MockSpotService)
		svc.On("ListSpots", mock.Anything, 50).Return([]response_models.TouristSpot{{Name: "Galle Fort"}}, nil).Once()

		w := get(newSpotsRouter(svc), "/spots")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Name":"Galle Fort"`)
		svc.AssertExpectations(t)
	})

	t.Run("featured limit", func(t *testing.T) {
		svc := new(MockSpotService)
		svc.On("ListSpots", mock.Anything, 5).Return([]response_models.TouristSpot{}, nil).Once()

		w := get(newSpotsRouter(svc), "/spots?limit=5")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	for _, q := range []string{"0", "101", "abc"} {
		t.Run("invalid limit "+q, func(t *testing.T) {
			svc := new(MockSpotService)

			w := get(newSpotsRouter(svc), "/spots?limit="+q)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "ListSpots", mock.Anything, mock.Anything)
		})
	}

	t.Run("store error", func(t *testing.T) {
		svc := new(MockSpotService)
		svc.On("ListSpots", mock.Anything, 50).Return(nil, errors.Join(utils.ErrDatabaseError, errors.New("down"))).Once()

		w := get(newSpotsRouter(svc), "/spots")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSpotsController_GetSpot(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockSpotService)
		svc.On("GetSpot", mock.Anything, "42").Return(&response_models.TouristSpot{ID: "42", Name: "Sigiriya"}, nil).Once()

		w := get(newSpotsRouter(svc), "/spots/42")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sigiriya")
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockSpotService)
		svc.On("GetSpot", mock.Anything, "43").Return(nil, utils.ErrSpotNotFound).Once()

		w := get(newSpotsRouter(svc), "/spots/43")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
