package components

import (
	"sportsbook/internal/handler"
	"sportsbook/internal/handler/api"
	"sportsbook/internal/infra/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func() *gin.Engine {
			return gin.New()
		},
		func(s *db.Session) api.Pinger { return s },
		api.NewHealthHandler,
		api.NewBookingHandler,
		api.NewMemberHandler,
	),
	fx.Invoke(handler.NewRouter),
)
