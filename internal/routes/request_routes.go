package routes

import (
	"github.com/gin-gonic/gin"

	"kmunity/internal/controllers"
	"kmunity/internal/middleware"
)

func RequestRoutes(api *gin.RouterGroup) {
	requests := api.Group("/requests")
	{
		requests.POST("", middleware.RequireAuth(), controllers.CreateRequest)
		requests.POST("/", middleware.RequireAuth(), controllers.CreateRequest)
		requests.GET("", controllers.GetRequests)
		requests.GET("/", controllers.GetRequests)
	}
}
