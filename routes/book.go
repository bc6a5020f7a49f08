package routes

import (
	bookControllers "github.com/Sashank007-leon/BookNexus/controllers/book"
	"github.com/Sashank007-leon/BookNexus/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupBookRoutes registers the public catalog and the admin CRUD.
func SetupBookRoutes(r *gin.Engine, db *gorm.DB) {
	books := r.Group("/books")
	{
		// Public browsing
		books.GET("/", bookControllers.GetBooks(db))
		books.GET("/with-ratings", bookControllers.GetBooksWithRatings(db))

		// Admin catalog management
		admin := books.Group("")
		admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.POST("/", bookControllers.CreateBook(db))
			admin.GET("/export", bookControllers.ExportBooksToExcel(db))
			admin.PUT("/:id", bookControllers.UpdateBook(db))
			admin.DELETE("/:id", bookControllers.DeleteBook(db))
		}

		books.GET("/:id", bookControllers.GetBookByID(db))
	}
}
