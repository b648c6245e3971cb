package handlers

import (
	"errors"
	"io"
	"net/http"

	"bookingschedule/models"
	"bookingschedule/services/booking"
	"bookingschedule/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking CRUD endpoints. The merchant always comes
// from the token, never from the request body.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

func bindBookingInput(c *gin.Context) (models.BookingInput, bool) {
	var input models.BookingInput
	if err := c.ShouldBind(&input); err != nil && !errors.Is(err, io.EOF) {
		getLogger(c).Debug("Malformed booking body", zap.Error(err))
		utils.JSONError(c, utils.NewAppError(utils.ErrValidation, "Invalid request body"))
		return input, false
	}
	return input, true
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}
	input, ok := bindBookingInput(c)
	if !ok {
		return
	}

	created, err := h.Bookings.CreateBooking(c.Request.Context(), nsID, input)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Status:  models.StatusSuccess,
		Message: "Booking created successfully",
		Data:    created.ToDTO(),
	})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}

	found, err := h.Bookings.GetBooking(c.Request.Context(), nsID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Status: models.StatusSuccess, Data: found.ToDTO()})
}

// UpdateBookingHandler handles PATCH and PUT /api/bookings/:id. Only the
// supplied fields change.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}
	input, ok := bindBookingInput(c)
	if !ok {
		return
	}

	updated, err := h.Bookings.UpdateBooking(c.Request.Context(), nsID, c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Status:  models.StatusSuccess,
		Message: "Booking updated successfully",
		Data:    updated.ToDTO(),
	})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}

	if err := h.Bookings.DeleteBooking(c.Request.Context(), nsID, c.Param("id")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Status: models.StatusSuccess, Message: "Booking deleted successfully"})
}

// SearchBookingsHandler handles GET /api/bookings?date=&time_from=&time_to=.
func (h *BookingHandler) SearchBookingsHandler(c *gin.Context) {
	nsID, ok := merchantNsID(c)
	if !ok {
		return
	}
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, utils.NewAppError(utils.ErrValidation, "Invalid query parameters"))
		return
	}

	found, err := h.Bookings.SearchBookings(c.Request.Context(), nsID, filter)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	data := make([]models.BookingDTO, len(found))
	for i, b := range found {
		data[i] = b.ToDTO()
	}
	count := len(data)
	c.JSON(http.StatusOK, models.Response{Status: models.StatusSuccess, Count: &count, Data: data})
}
