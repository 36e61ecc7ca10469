package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxenails/nail-booking-backend/internal/pkg/response"
	"github.com/luxenails/nail-booking-backend/internal/slots"
)

type Handler struct {
	service slots.Service
}

func NewHandler(service slots.Service) *Handler {
	return &Handler{service: service}
}

// Available handles GET /api/slots?date=YYYY-MM-DD&service=gel.
func (h *Handler) Available(c *gin.Context) {
	av, err := h.service.AvailableSlots(c.Request.Context(), c.Query("date"), c.Query("service"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(av))
}
