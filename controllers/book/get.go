package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBooks returns the catalog, optionally filtered by category.
// GET /books?category=Fiction
func GetBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Book{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var books []models.Book
		if err := query.Order("created_at DESC").Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

// GetBookByID returns a single book.
// GET /books/:id
func GetBookByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
			}
			return
		}
		c.JSON(http.StatusOK, book)
	}
}
