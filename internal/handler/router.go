package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sportsbook/internal/handler/api"
	"sportsbook/internal/handler/middleware"
	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/logging"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *logging.Logger, bookingHandler *api.BookingHandler, memberHandler *api.MemberHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, memberHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *logging.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, memberHandler *api.MemberHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.SearchRooms},
		})

		members := apiGroup.Group("/members")
		addRoutes(members, []route{
			{Method: http.MethodGet, Path: "", Handler: memberHandler.List},
			{Method: http.MethodPost, Path: "", Handler: memberHandler.Create},
			{Method: http.MethodPatch, Path: "/:id/email", Handler: memberHandler.UpdateEmail},
			{Method: http.MethodPatch, Path: "/:id/password", Handler: memberHandler.UpdatePassword},
			{Method: http.MethodDelete, Path: "/:id", Handler: memberHandler.Delete},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
