package routes

import (
	orderControllers "github.com/Sashank007-leon/BookNexus/controllers/order"
	"github.com/Sashank007-leon/BookNexus/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the order workflow endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Shopper endpoints
		orders.POST("/", orderControllers.PlaceOrderHandler(db))
		orders.GET("/my-orders", orderControllers.GetUserOrdersHandler(db))

		// Admin order management
		admin := orders.Group("")
		admin.Use(middleware.RequireAdmin)
		{
			admin.GET("/", orderControllers.GetAllOrdersHandler(db))
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)
			admin.PATCH("/:orderID", orderControllers.UpdateOrderHandler(db))
			admin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}
}
