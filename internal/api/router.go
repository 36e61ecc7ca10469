package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/luxenails/nail-booking-backend/internal/booking"
	bookingHttp "github.com/luxenails/nail-booking-backend/internal/booking/http"
	"github.com/luxenails/nail-booking-backend/internal/slots"
	slotsHttp "github.com/luxenails/nail-booking-backend/internal/slots/http"
)

// Config carries what the router needs from the application container.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	BookingService booking.Service
	SlotService    slots.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, RequestID) and
// registering routes for the booking and slot modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	// Configure CORS (Cross-Origin Resource Sharing). The booking form is
	// served as a static site, so in production only its origins may call us.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	r.Use(cors.New(corsConfig))

	// Liveness endpoints, kept compatible with the deployed site's checks.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "nail booking backend running"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	slotsHandler := slotsHttp.NewHandler(cfg.SlotService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /api
	api := r.Group("/api")
	{
		slotsHttp.RegisterRoutes(api, slotsHandler)
		bookingHttp.RegisterRoutes(api, bookingHandler)
	}

	return r
}
