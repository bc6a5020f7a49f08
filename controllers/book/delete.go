package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteBook removes a book and its stored cover image.
// DELETE /books/:id (admin)
func DeleteBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch book"})
			}
			return
		}

		if book.Image != "" {
			deleteCoverImage(book.Image)
		}

		if err := db.Delete(&book).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
	}
}
