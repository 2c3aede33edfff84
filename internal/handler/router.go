package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gather-venues/internal/handler/api"
	"gather-venues/internal/handler/middleware"
	"gather-venues/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, venueHandler *api.VenueHandler, searchHandler *api.SearchHandler, bookingHandler *api.BookingHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, venueHandler, searchHandler, bookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, venueHandler *api.VenueHandler, searchHandler *api.SearchHandler, bookingHandler *api.BookingHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/cities", Handler: venueHandler.ListCities},
			{Method: http.MethodPost, Path: "/search", Handler: searchHandler.LandingSearch},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListBookings},
		})

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: venueHandler.ListVenues},
				{Method: http.MethodGet, Path: "/:id", Handler: venueHandler.GetVenue},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: venueHandler.Availability},
			})
		}

		flows := apiGroup.Group("/booking-flows")
		{
			addRoutes(flows, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.StartFlow},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetFlow},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Abandon},
				{Method: http.MethodPatch, Path: "/:id/selection", Handler: bookingHandler.UpdateSelection},
				{Method: http.MethodPost, Path: "/:id/proceed", Handler: bookingHandler.Proceed},
				{Method: http.MethodPost, Path: "/:id/edit", Handler: bookingHandler.Edit},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/reset", Handler: bookingHandler.Reset},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
