package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/appointments")

	group.GET("", h.List)
	group.POST("", h.Create)
}
