package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	mem "tripsmith/pkg/memcache"
	"tripsmith/pkg/utils"
)

const SessionHeader = "X-Session-ID"

type TripController struct {
	plannerService services.TripPlannerServiceInterface
	inFlight       mem.InFlightStore
	lockTTL        time.Duration
	logger         *zap.Logger
}

func NewTripController(
	plannerService services.TripPlannerServiceInterface,
	inFlight mem.InFlightStore,
	lockTTL time.Duration,
	logger *zap.Logger,
) *TripController {
	return &TripController{
		plannerService: plannerService,
		inFlight:       inFlight,
		lockTTL:        lockTTL,
		logger:         logger.Named("trip_controller"),
	}
}

// PlanTrip godoc
// @Summary Generate a trip itinerary
// @Description Resolves destinations, looks up tourist spots and asks the model for a day-by-day plan
// @Tags Trips
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Client session, defaults to the caller IP"
// @Param request body request_models.PlanTripRequest true "Trip constraints"
// @Success 200 {object} response_models.TripPlanResult
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please fill in budget, destinations and days")
		return
	}

	key := sessionKey(c)
	token, ok := t.inFlight.TryAcquire(key, t.lockTTL)
	if !ok {
		utils.HandleServiceError(c, t.logger, utils.ErrRequestInFlight)
		return
	}
	defer t.inFlight.Release(key, token)

	result, err := t.plannerService.PlanTrip(c.Request.Context(), services.PlanTripInput{
		Budget:       req.Budget,
		Destinations: req.Destinations,
		Days:         req.Days,
	})
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Travel plan created successfully")
}

func sessionKey(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(SessionHeader)); id != "" {
		return "session:" + id
	}
	return "ip:" + c.ClientIP()
}
