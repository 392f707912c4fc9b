package routes

import (
	"github.com/gin-gonic/gin"

	"kmunity/internal/controllers"
	"kmunity/internal/middleware"
)

func DonationRoutes(api *gin.RouterGroup) {
	donations := api.Group("/donations")
	{
		donations.POST("", middleware.RequireAuth(), controllers.CreateDonation)
		donations.POST("/", middleware.RequireAuth(), controllers.CreateDonation)
	}
}
