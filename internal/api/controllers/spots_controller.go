package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/internal/models/request_models"
	"tripsmith/internal/services"
	"tripsmith/pkg/utils"
)

type SpotsController struct {
	spotService services.SpotServiceInterface
	logger      *zap.Logger
}

func NewSpotsController(spotService services.SpotServiceInterface, logger *zap.Logger) *SpotsController {
	return &SpotsController{
		spotService: spotService,
		logger:      logger.Named("spots_controller"),
	}
}

// ListSpots godoc
// @Summary List tourist spots
// @Tags Spots
// @Produce json
// @Param limit query int false "Number of spots (default: 50, max: 100)"
// @Success 200 {array} response_models.TouristSpot
// @Failure 400 {object} utils.APIResponse
// @Router /spots [get]
func (s *SpotsController) ListSpots(c *gin.Context) {
	var q request_models.ListSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	spots, err := s.spotService.ListSpots(c.Request.Context(), q.Limit)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, spots, "Spots fetched successfully")
}

// GetSpot godoc
// @Summary Get a tourist spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} response_models.TouristSpot
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id} [get]
func (s *SpotsController) GetSpot(c *gin.Context) {
	spot, err := s.spotService.GetSpot(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, spot, "Spot fetched successfully")
}
