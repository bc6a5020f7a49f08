package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateBook updates an existing book by ID. All form fields are optional;
// a new "image" file replaces (and deletes) the old cover.
// PUT /books/:id (admin, multipart form)
func UpdateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}

		if v := c.PostForm("title"); v != "" {
			book.Title = v
		}
		if v := c.PostForm("author"); v != "" {
			book.Author = v
		}
		if v := c.PostForm("description"); v != "" {
			book.Description = v
		}
		if v := c.PostForm("category"); v != "" {
			book.Category = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			book.Price = price
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be a non-negative integer"})
				return
			}
			book.Stock = stock
		}

		if file, err := c.FormFile("image"); err == nil {
			if book.Image != "" {
				deleteCoverImage(book.Image)
			}
			imageURL, err := saveCoverImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			book.Image = imageURL
		}

		if err := db.Save(&book).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
			return
		}

		c.JSON(http.StatusOK, book)
	}
}
