package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/appointments.
func (h *Handler) Create(c *gin.Context) {
	var body CreateAppointmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		FullName:      body.FullName,
		ClientEmail:   body.ClientEmail,
		ContactDetail: body.ContactDetail,
		Service:       body.Service,
		Date:          body.Date,
		Time:          body.Time,
		Notes:         body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateAppointmentResponse{
		OK:      true,
		Booking: NewBookingResponse(b),
	})
}

// List handles GET /api/appointments.
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, ListAppointmentsResponse{Bookings: items})
}
