package routes

import (
	"github.com/gin-gonic/gin"

	"kmunity/internal/controllers"
	"kmunity/internal/middleware"
)

func EventRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.POST("", middleware.RequireAuth(), controllers.CreateEvent)
		events.POST("/", middleware.RequireAuth(), controllers.CreateEvent)
		events.GET("", controllers.GetEvents)
		events.GET("/", controllers.GetEvents)
	}
}
