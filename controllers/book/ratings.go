package bookControllers

import (
	"math"
	"net/http"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AverageRating rounds the mean rating to one decimal, zero when there
// are no reviews.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	avg := float64(total) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// GetBooksWithRatings returns the catalog enriched with review aggregates.
// GET /books/with-ratings
func GetBooksWithRatings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var books []models.Book
		if err := db.Order("created_at DESC").Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		var reviews []models.Review
		if err := db.Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		ratingsByBook := make(map[uint][]int, len(books))
		for _, r := range reviews {
			ratingsByBook[r.BookID] = append(ratingsByBook[r.BookID], r.Rating)
		}

		result := make([]models.BookWithRating, 0, len(books))
		for _, book := range books {
			ratings := ratingsByBook[book.ID]
			result = append(result, models.BookWithRating{
				Book:          book,
				AverageRating: AverageRating(ratings),
				ReviewCount:   len(ratings),
			})
		}

		c.JSON(http.StatusOK, result)
	}
}
