package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/ndayishimiyefidel/recipe-backend/internal/api/handlers/notification"
	"github.com/ndayishimiyefidel/recipe-backend/internal/api/handlers/weeklyplan"
	"github.com/ndayishimiyefidel/recipe-backend/internal/middlewares"
)

func New(notifHandler *notification.Handler, planHandler *weeklyplan.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	api.Use(middlewares.RequireUser())

	notifications := api.Group("/notifications")
	{
		notifications.POST("", notifHandler.Create)
		notifications.GET("", notifHandler.List)
		notifications.GET("/:id/status", notifHandler.GetStatus)
		notifications.PUT("/:id/status", notifHandler.OverrideStatus)
		notifications.DELETE("/:id", notifHandler.Delete)
	}

	plan := api.Group("/weekly-plan")
	{
		plan.GET("", planHandler.Get)
		plan.POST("", planHandler.Upsert)
		plan.DELETE("", planHandler.Delete)
	}

	return e
}
