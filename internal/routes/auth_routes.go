package routes

import (
	"github.com/gin-gonic/gin"

	"kmunity/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		// Both bare and trailing-slash variants are served directly,
		// without a redirect hop.
		auth.POST("/register", controllers.Register)
		auth.POST("/register/", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/login/", controllers.Login)
	}
}
