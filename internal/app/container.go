package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxenails/nail-booking-backend/internal/api"
	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/slots"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// Ledger backend: DBPool when non-nil, otherwise the JSON file at
	// BookingsFile.
	BookingsFile string
	DBPool       *pgxpool.Pool

	// Notifier may be nil to disable booking confirmations entirely.
	Notifier booking.Notifier
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Booking Ledger
	var repo booking.Repository
	if cfg.DBPool != nil {
		repo = booking.NewPgxRepository(cfg.DBPool)
	} else {
		repo = booking.NewFileStore(cfg.BookingsFile)
	}

	// Booking Module
	bookingService := booking.NewService(repo, cfg.Notifier)

	// Slot Query Module
	slotService := slots.NewService(repo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		BookingService: bookingService,
		SlotService:    slotService,
	})

	return &Container{
		Router: router,
	}
}
