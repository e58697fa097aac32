package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	locationHandler *api.LocationHandler,
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, locationHandler, spotHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	locationHandler *api.LocationHandler,
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		locations := apiGroup.Group("/locations")
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "", Handler: locationHandler.GetLocations},
				{Method: http.MethodGet, Path: "/nearby", Handler: locationHandler.GetNearbyLocations},
				{Method: http.MethodGet, Path: "/:id", Handler: locationHandler.GetLocation},
			})

			provisioning := locations.Group("")
			provisioning.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
			addRoutes(provisioning, []route{
				{Method: http.MethodPost, Path: "", Handler: locationHandler.CreateLocation},
			})
		}

		spots := apiGroup.Group("/spots")
		{
			addRoutes(spots, []route{
				{Method: http.MethodGet, Path: "/location/:locationId/available", Handler: spotHandler.GetAvailableSpots},
				{Method: http.MethodGet, Path: "/location/:locationId/spot/:spotNumber", Handler: spotHandler.GetSpotByNumber},
			})

			provisioning := spots.Group("")
			provisioning.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
			addRoutes(provisioning, []route{
				{Method: http.MethodPost, Path: "", Handler: spotHandler.CreateSpot},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: spotHandler.UpdateSpotStatus},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
