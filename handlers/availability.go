package handlers

import (
	"net/http"

	"bookingschedule/models"
	"bookingschedule/services/availability"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Engine availability.AvailabilityService
}

func NewScheduleHandler(engine availability.AvailabilityService) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine}
}

// GetDeliveryScheduleHandler handles GET /api/schedule/delivery.
func (h *ScheduleHandler) GetDeliveryScheduleHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}

	slots, err := h.Engine.ComputeAvailability(c.Request.Context(), nsID)
	if err != nil {
		getLogger(c).Debug("Delivery schedule unavailable", zap.String("merchantNsID", nsID), zap.Error(err))
		utils.JSONError(c, err)
		return
	}

	count := len(slots)
	c.JSON(http.StatusOK, models.Response{
		Status:  models.StatusSuccess,
		Message: "The delivery Schedule has been found.",
		Count:   &count,
		Data:    slots,
	})
}
