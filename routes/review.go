package routes

import (
	reviewControllers "github.com/Sashank007-leon/BookNexus/controllers/review"
	"github.com/Sashank007-leon/BookNexus/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupReviewRoutes registers review creation and listings.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviews := r.Group("/reviews")
	{
		// Public, but personalized when a token is supplied
		reviews.GET("/book/:bookId", middleware.OptionalToken, reviewControllers.GetBookReviewsHandler(db))

		reviews.POST("/", middleware.ValidateToken, reviewControllers.AddReviewHandler(db))
		reviews.GET("/my-reviews", middleware.ValidateToken, reviewControllers.GetMyReviewsHandler(db))
	}
}
