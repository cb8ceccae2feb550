package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, hotelHandler, bookingHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:hotel", Handler: hotelHandler.GetHotel},
				{Method: http.MethodPatch, Path: "/:hotel", Handler: hotelHandler.RenameHotel},
				{Method: http.MethodDelete, Path: "/:hotel", Handler: hotelHandler.DeleteHotel},
				{Method: http.MethodPut, Path: "/:hotel/base-price", Handler: hotelHandler.UpdateBasePrice},

				{Method: http.MethodPost, Path: "/:hotel/rooms", Handler: hotelHandler.AddRoom},
				{Method: http.MethodGet, Path: "/:hotel/rooms/:room", Handler: hotelHandler.GetRoom},
				{Method: http.MethodDelete, Path: "/:hotel/rooms/:room", Handler: hotelHandler.RemoveRoom},
				{Method: http.MethodGet, Path: "/:hotel/rooms/:room/calendar", Handler: availabilityHandler.RoomCalendar},

				{Method: http.MethodPost, Path: "/:hotel/rate-windows", Handler: hotelHandler.AddRateWindow},
				{Method: http.MethodDelete, Path: "/:hotel/rate-windows/:index", Handler: hotelHandler.RemoveRateWindow},

				{Method: http.MethodGet, Path: "/:hotel/occupancy", Handler: availabilityHandler.Occupancy},
				{Method: http.MethodGet, Path: "/:hotel/available-rooms", Handler: availabilityHandler.AvailableRooms},

				{Method: http.MethodPost, Path: "/:hotel/reservations", Handler: bookingHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/:hotel/reservations", Handler: bookingHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:hotel/reservations/:id", Handler: bookingHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:hotel/reservations/:id", Handler: bookingHandler.CancelReservation},

				{Method: http.MethodPost, Path: "/:hotel/quotes", Handler: bookingHandler.SimulateQuote},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
