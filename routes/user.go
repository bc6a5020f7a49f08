package routes

import (
	cartControllers "github.com/Sashank007-leon/BookNexus/controllers/cart"
	userControllers "github.com/Sashank007-leon/BookNexus/controllers/user"
	"github.com/Sashank007-leon/BookNexus/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:book_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:book_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}
	}

	// Admin listing of registered users
	r.GET("/users", middleware.ValidateToken, middleware.RequireAdmin, userControllers.GetAllUsers(db))
}
